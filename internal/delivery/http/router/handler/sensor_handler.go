package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SensorHandler holds dependencies for household sensor endpoints
type SensorHandler struct {
	uc     usecase.SensorUsecase
	logger *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler
func NewSensorHandler(uc usecase.SensorUsecase, logger *slog.Logger) *SensorHandler {
	return &SensorHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSensors handles listing a household's sensors
func (h *SensorHandler) ListSensors(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	sensors := h.uc.ListSensors(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, sensors, "")
}

// CreateSensor handles registering a new sensor
func (h *SensorHandler) CreateSensor(c echo.Context) error {
	var req usecase.CreateSensorInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sensor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	sensor, err := h.uc.CreateSensor(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sensor, "Sensor created successfully")
}

// ReadingRequest carries one sensor reading
type ReadingRequest struct {
	Value string `json:"value" validate:"required"`
}

// RecordReading handles storing a sensor's latest reading
func (h *SensorHandler) RecordReading(c echo.Context) error {
	sensorID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ReadingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reading input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.RecordSensorReading(c.Request().Context(), sensorID, req.Value); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reading recorded successfully")
}

// ActiveRequest carries the desired active state for a sensor
type ActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive handles enabling or disabling a sensor
func (h *SensorHandler) SetActive(c echo.Context) error {
	sensorID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid active input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.SetSensorActive(c.Request().Context(), sensorID, req.Active); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Sensor updated successfully")
}

// DeleteSensor handles removing a sensor
func (h *SensorHandler) DeleteSensor(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSensor(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Sensor deleted successfully")
}
