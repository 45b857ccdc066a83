package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChatHandler holds dependencies for household chat endpoints
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListChatMessages handles listing a household's chat messages
func (h *ChatHandler) ListChatMessages(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	messages := h.uc.ListChatMessages(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, messages, "")
}

// ChatMessageRequest carries the body of a chat message
type ChatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// SendChatMessage handles posting a message to the household chat. The sender
// is the authenticated caller.
func (h *ChatHandler) SendChatMessage(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.uc.SendChatMessage(c.Request().Context(), householdID, userID, req.Content)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// EditChatMessage handles replacing a message's content
func (h *ChatHandler) EditChatMessage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.EditChatMessage(c.Request().Context(), id, req.Content); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Message edited successfully")
}

// DeleteChatMessage handles removing a message
func (h *ChatHandler) DeleteChatMessage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteChatMessage(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
