package repository

import (
	"context"
	"errors"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRentPaymentNotFound is returned when a rent payment is not found.
var ErrRentPaymentNotFound = errors.New("rent payment not found")

// RentRepository defines the interface for rent-payment database operations.
type RentRepository interface {
	// CreateRentPayment persists a new rent payment.
	CreateRentPayment(ctx context.Context, payment *entity.RentPayment) error

	// FindRentPaymentByID retrieves a rent payment by its unique ID.
	FindRentPaymentByID(ctx context.Context, id uuid.UUID) (*entity.RentPayment, error)

	// ListRentPaymentsByHousehold retrieves payments for a household ordered by
	// due date, most recent first.
	ListRentPaymentsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.RentPayment, error)

	// MarkRentPaymentPaid transitions a payment to paid with the given paid date
	// and payment method, refreshing updated_at.
	MarkRentPaymentPaid(ctx context.Context, id uuid.UUID, paidDate time.Time, method string) error

	// UpdateRentPaymentStatus sets the status of a payment.
	UpdateRentPaymentStatus(ctx context.Context, id uuid.UUID, status entity.RentStatus) error

	// DeleteRentPayment removes a rent payment.
	DeleteRentPayment(ctx context.Context, id uuid.UUID) error
}
