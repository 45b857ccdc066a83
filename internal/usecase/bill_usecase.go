package usecase

import (
	"context"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBillInput carries the fields needed to record a shared bill.
type CreateBillInput struct {
	HouseholdID uuid.UUID           `json:"household_id" validate:"required"`
	Title       string              `json:"title" validate:"required"`
	Amount      float64             `json:"amount" validate:"required,gt=0"`
	DueDate     time.Time           `json:"due_date"`
	Category    entity.BillCategory `json:"category"`
	SplitAmong  []uuid.UUID         `json:"split_among" validate:"required,min=1"`
}

// BillUsecase defines the interface for shared bill use cases
type BillUsecase interface {
	// ListBills returns a household's bills, most recent due date first. Read
	// failures are logged and produce an empty list, never an error.
	ListBills(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Bill

	// CreateBill records a new shared bill. The split set must be non-empty.
	CreateBill(ctx context.Context, input CreateBillInput) (*entity.Bill, error)

	// MarkBillPaid transitions a bill to paid, recording who settled it.
	MarkBillPaid(ctx context.Context, id, paidBy uuid.UUID) error

	// DeleteBill removes a bill.
	DeleteBill(ctx context.Context, id uuid.UUID) error
}
