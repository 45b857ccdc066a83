package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NudgeHandler holds dependencies for nudge endpoints
type NudgeHandler struct {
	uc     usecase.NudgeUsecase
	logger *slog.Logger
}

// NewNudgeHandler is the constructor for NudgeHandler
func NewNudgeHandler(uc usecase.NudgeUsecase, logger *slog.Logger) *NudgeHandler {
	return &NudgeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNudges handles listing a household's nudges
func (h *NudgeHandler) ListNudges(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	nudges := h.uc.ListNudges(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, nudges, "")
}

// CreateNudge handles creating a nudge and fanning it out to the event stream
// and the household push topic
func (h *NudgeHandler) CreateNudge(c echo.Context) error {
	var req usecase.CreateNudgeInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nudge input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	nudge, err := h.uc.CreateNudge(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nudge, "Nudge created successfully")
}

// MarkNudgeRead handles flagging a nudge as read
func (h *NudgeHandler) MarkNudgeRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkNudgeRead(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Nudge marked as read")
}

// DismissNudge handles flagging a nudge as dismissed
func (h *NudgeHandler) DismissNudge(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DismissNudge(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Nudge dismissed")
}

// DeleteNudge handles removing a nudge
func (h *NudgeHandler) DeleteNudge(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNudge(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Nudge deleted successfully")
}
