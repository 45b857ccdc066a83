package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RentHandler holds dependencies for rent payment endpoints
type RentHandler struct {
	uc     usecase.RentUsecase
	logger *slog.Logger
}

// NewRentHandler is the constructor for RentHandler
func NewRentHandler(uc usecase.RentUsecase, logger *slog.Logger) *RentHandler {
	return &RentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRentPayments handles listing a household's rent payments
func (h *RentHandler) ListRentPayments(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	payments := h.uc.ListRentPayments(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, payments, "")
}

// CreateRentPayment handles recording a new rent obligation
func (h *RentHandler) CreateRentPayment(c echo.Context) error {
	var req usecase.CreateRentPaymentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rent payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.uc.CreateRentPayment(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Rent payment created successfully")
}

// MarkPaidRequest carries the optional payment method for settling rent
type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// MarkRentPaymentPaid handles settling a rent payment
func (h *RentHandler) MarkRentPaymentPaid(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req MarkPaidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.MarkRentPaymentPaid(c.Request().Context(), id, req.PaymentMethod); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rent payment marked as paid")
}

// DeleteRentPayment handles removing a rent payment
func (h *RentHandler) DeleteRentPayment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRentPayment(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Rent payment deleted successfully")
}
