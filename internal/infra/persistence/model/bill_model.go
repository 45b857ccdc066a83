package model

import (
	"time"

	"github.com/google/uuid"
)

// BillModel is the GORM-specific struct for the 'bills' table.
type BillModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	DueDate     time.Time `gorm:"not null;index"`
	PaidDate    *time.Time
	Status      string     `gorm:"type:varchar(16);not null;default:'pending'"`
	Category    string     `gorm:"type:varchar(32);not null"`
	PaidBy      *uuid.UUID `gorm:"type:uuid"`
	SplitAmong  UUIDSlice  `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BillModel) TableName() string {
	return "bills"
}
