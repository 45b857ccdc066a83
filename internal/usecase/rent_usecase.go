package usecase

import (
	"context"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRentPaymentInput carries the fields needed to record a rent obligation.
type CreateRentPaymentInput struct {
	HouseholdID uuid.UUID `json:"household_id" validate:"required"`
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	DueDate     time.Time `json:"due_date"`
}

// RentUsecase defines the interface for rent payment use cases
type RentUsecase interface {
	// ListRentPayments returns a household's rent payments, most recent due date
	// first. Read failures are logged and produce an empty list, never an error.
	ListRentPayments(ctx context.Context, householdID uuid.UUID, limit int) []*entity.RentPayment

	// CreateRentPayment records a new rent obligation for one roommate.
	CreateRentPayment(ctx context.Context, input CreateRentPaymentInput) (*entity.RentPayment, error)

	// MarkRentPaymentPaid transitions a payment to paid.
	MarkRentPaymentPaid(ctx context.Context, id uuid.UUID, method string) error

	// DeleteRentPayment removes a rent payment.
	DeleteRentPayment(ctx context.Context, id uuid.UUID) error
}
