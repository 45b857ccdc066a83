package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillStatus is the lifecycle state of a shared bill.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

// Valid reports whether the status is one of the known bill states.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	}

	return false
}

// BillCategory classifies a shared bill.
type BillCategory string

const (
	BillCategoryUtilities BillCategory = "utilities"
	BillCategoryInternet  BillCategory = "internet"
	BillCategoryGroceries BillCategory = "groceries"
	BillCategoryCleaning  BillCategory = "cleaning"
	BillCategoryOther     BillCategory = "other"
)

// Bill represents a household expense split between roommates.
// SplitAmong is non-empty; PaidBy is set once someone settles the bill.
type Bill struct {
	ID          uuid.UUID    `json:"id"`
	HouseholdID uuid.UUID    `json:"household_id"`
	Title       string       `json:"title"`
	Amount      float64      `json:"amount"`
	DueDate     time.Time    `json:"due_date"`
	PaidDate    *time.Time   `json:"paid_date,omitempty"`
	Status      BillStatus   `json:"status"`
	Category    BillCategory `json:"category"`
	PaidBy      *uuid.UUID   `json:"paid_by,omitempty"`
	SplitAmong  []uuid.UUID  `json:"split_among"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
