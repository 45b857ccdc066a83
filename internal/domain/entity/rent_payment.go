package entity

import (
	"time"

	"github.com/google/uuid"
)

// RentStatus is the lifecycle state of a rent payment.
type RentStatus string

const (
	RentStatusPending RentStatus = "pending"
	RentStatusPaid    RentStatus = "paid"
	RentStatusOverdue RentStatus = "overdue"
	RentStatusPartial RentStatus = "partial"
)

// Valid reports whether the status is one of the known rent states.
func (s RentStatus) Valid() bool {
	switch s {
	case RentStatusPending, RentStatusPaid, RentStatusOverdue, RentStatusPartial:
		return true
	}

	return false
}

// RentPayment represents one roommate's rent obligation for a period.
// Status moves pending→paid (terminal for the period) or pending→overdue;
// the overdue transition is time-based and computed by callers, not stored logic.
type RentPayment struct {
	ID            uuid.UUID  `json:"id"`
	HouseholdID   uuid.UUID  `json:"household_id"`
	UserID        uuid.UUID  `json:"user_id"`
	Amount        float64    `json:"amount"` // Positive amount in the household currency.
	DueDate       time.Time  `json:"due_date"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	Status        RentStatus `json:"status"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
