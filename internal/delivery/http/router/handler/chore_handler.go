package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ChoreHandler holds dependencies for chore endpoints
type ChoreHandler struct {
	uc     usecase.ChoreUsecase
	logger *slog.Logger
}

// NewChoreHandler is the constructor for ChoreHandler
func NewChoreHandler(uc usecase.ChoreUsecase, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListChores handles listing a household's chores
func (h *ChoreHandler) ListChores(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	chores := h.uc.ListChores(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, chores, "")
}

// ListChoreCompletions handles listing a household's completion records
func (h *ChoreHandler) ListChoreCompletions(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	completions := h.uc.ListChoreCompletions(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, completions, "")
}

// CreateChore handles putting a new chore on the board
func (h *ChoreHandler) CreateChore(c echo.Context) error {
	var req usecase.CreateChoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chore input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	chore, err := h.uc.CreateChore(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, chore, "Chore created successfully")
}

// CompleteChore handles marking a chore done. The authenticated caller earns
// the chore's points.
func (h *ChoreHandler) CompleteChore(c echo.Context) error {
	choreID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	completion, err := h.uc.CompleteChore(c.Request().Context(), choreID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, completion, "Chore completed successfully")
}

// AssignChoreRequest carries the assignee for a chore. A null assignee clears
// the assignment.
type AssignChoreRequest struct {
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

// AssignChore handles setting or clearing a chore's assignee
func (h *ChoreHandler) AssignChore(c echo.Context) error {
	choreID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AssignChoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.AssignChore(c.Request().Context(), choreID, req.AssignedTo, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Chore assigned successfully")
}

// DeleteChore handles removing a chore
func (h *ChoreHandler) DeleteChore(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteChore(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Chore deleted successfully")
}
