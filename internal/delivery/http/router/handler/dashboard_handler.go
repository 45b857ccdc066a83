package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler holds dependencies for the harmony dashboard endpoint
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetDashboard returns the aggregated harmony snapshot for a household. The
// service guarantees a snapshot even when the data layer is down, so this
// endpoint never returns a 5xx for data failures.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	stats := h.uc.GetDashboardStats(c.Request().Context(), householdID)

	return response.Success(c, http.StatusOK, stats, "")
}
