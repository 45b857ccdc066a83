package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BillHandler holds dependencies for shared bill endpoints
type BillHandler struct {
	uc     usecase.BillUsecase
	logger *slog.Logger
}

// NewBillHandler is the constructor for BillHandler
func NewBillHandler(uc usecase.BillUsecase, logger *slog.Logger) *BillHandler {
	return &BillHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBills handles listing a household's bills
func (h *BillHandler) ListBills(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	bills := h.uc.ListBills(c.Request().Context(), householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, bills, "")
}

// CreateBill handles recording a new shared bill
func (h *BillHandler) CreateBill(c echo.Context) error {
	var req usecase.CreateBillInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bill input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bill, err := h.uc.CreateBill(c.Request().Context(), req)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bill, "Bill created successfully")
}

// MarkBillPaid handles settling a bill. The authenticated caller is recorded
// as the payer.
func (h *BillHandler) MarkBillPaid(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.MarkBillPaid(c.Request().Context(), id, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Bill marked as paid")
}

// DeleteBill handles removing a bill
func (h *BillHandler) DeleteBill(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBill(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Bill deleted successfully")
}
