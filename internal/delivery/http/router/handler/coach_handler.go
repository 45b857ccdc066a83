package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/domain/entity"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CoachHandler holds dependencies for conflict-coach endpoints
type CoachHandler struct {
	uc     usecase.CoachUsecase
	logger *slog.Logger
}

// NewCoachHandler is the constructor for CoachHandler
func NewCoachHandler(uc usecase.CoachUsecase, logger *slog.Logger) *CoachHandler {
	return &CoachHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCoachSessions handles listing a household's coach sessions
func (h *CoachHandler) ListCoachSessions(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	sessions := h.uc.ListCoachSessions(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, sessions, "")
}

// StartSessionRequest carries the topic and participants for a new session
type StartSessionRequest struct {
	Topic        string      `json:"topic" validate:"required"`
	Participants []uuid.UUID `json:"participants"`
}

// StartCoachSession handles opening a new conflict-coach session
func (h *CoachHandler) StartCoachSession(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.uc.StartCoachSession(c.Request().Context(), householdID, req.Topic, req.Participants)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session, "Coach session started successfully")
}

// StatusRequest carries the target status for a session transition
type StatusRequest struct {
	Status entity.CoachSessionStatus `json:"status" validate:"required"`
}

// UpdateCoachSessionStatus handles transitioning a session's status
func (h *CoachHandler) UpdateCoachSessionStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateCoachSessionStatus(c.Request().Context(), id, req.Status); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Coach session updated successfully")
}
