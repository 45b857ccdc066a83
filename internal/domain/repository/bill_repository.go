package repository

import (
	"context"
	"errors"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBillNotFound is returned when a bill is not found.
var ErrBillNotFound = errors.New("bill not found")

// BillRepository defines the interface for shared-bill database operations.
type BillRepository interface {
	// CreateBill persists a new bill.
	CreateBill(ctx context.Context, bill *entity.Bill) error

	// FindBillByID retrieves a bill by its unique ID.
	FindBillByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)

	// ListBillsByHousehold retrieves bills for a household ordered by due date,
	// most recent first.
	ListBillsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Bill, error)

	// MarkBillPaid transitions a bill to paid, recording who settled it and when.
	MarkBillPaid(ctx context.Context, id uuid.UUID, paidBy uuid.UUID, paidDate time.Time) error

	// UpdateBillStatus sets the status of a bill.
	UpdateBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error

	// DeleteBill removes a bill.
	DeleteBill(ctx context.Context, id uuid.UUID) error
}
