package model

import (
	"time"

	"github.com/google/uuid"
)

// RentPaymentModel is the GORM-specific struct for the 'rent_payments' table.
type RentPaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	DueDate       time.Time `gorm:"not null;index"`
	PaidDate      *time.Time
	Status        string `gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentMethod string `gorm:"type:varchar(64)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RentPaymentModel) TableName() string {
	return "rent_payments"
}
