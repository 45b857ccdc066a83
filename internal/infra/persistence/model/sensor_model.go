package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorModel is the GORM-specific struct for the 'sensors' table.
// The optional last-reading snapshot is flattened into two nullable columns.
type SensorModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type             string    `gorm:"type:varchar(16);not null"`
	Location         string    `gorm:"type:varchar(255);not null"`
	IsActive         bool      `gorm:"not null;default:true"`
	LastReadingValue *string   `gorm:"type:text"`
	LastReadingAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SensorModel) TableName() string {
	return "sensors"
}
