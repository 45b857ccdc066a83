package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HouseholdHandler holds dependencies for household endpoints
type HouseholdHandler struct {
	uc     usecase.HouseholdUsecase
	logger *slog.Logger
}

// NewHouseholdHandler is the constructor for HouseholdHandler
func NewHouseholdHandler(uc usecase.HouseholdUsecase, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateHousehold handles creating a new household
func (h *HouseholdHandler) CreateHousehold(c echo.Context) error {
	var req usecase.CreateHouseholdInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid household input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	household, err := h.uc.CreateHousehold(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, household, "Household created successfully")
}

// GetHousehold handles retrieving one household
func (h *HouseholdHandler) GetHousehold(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	household, err := h.uc.GetHousehold(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, household, "")
}

// UpdateHousehold handles replacing a household's details
func (h *HouseholdHandler) UpdateHousehold(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.CreateHouseholdInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid household input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	household, err := h.uc.UpdateHousehold(c.Request().Context(), id, req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, household, "Household updated successfully")
}

// DeleteHousehold handles removing a household
func (h *HouseholdHandler) DeleteHousehold(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteHousehold(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Household deleted successfully")
}
