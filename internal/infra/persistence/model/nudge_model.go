package model

import (
	"time"

	"github.com/google/uuid"
)

// NudgeModel is the GORM-specific struct for the 'nudges' table.
type NudgeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(32);not null"`
	Priority    string    `gorm:"type:varchar(8);not null;default:'medium'"`
	TargetUsers UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	IsRead      bool      `gorm:"not null;default:false"`
	IsDismissed bool      `gorm:"not null;default:false"`
	ExpiresAt   *time.Time
	ActionURL   string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NudgeModel) TableName() string {
	return "nudges"
}
