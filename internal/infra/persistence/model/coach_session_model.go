package model

import (
	"time"

	"github.com/google/uuid"
)

// CoachSessionModel is the GORM-specific struct for the 'coach_sessions' table.
type CoachSessionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic        string    `gorm:"type:varchar(255);not null"`
	Participants UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	Status       string    `gorm:"type:varchar(16);not null;default:'active'"`
	StartedAt    time.Time `gorm:"not null"`
	EndedAt      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoachSessionModel) TableName() string {
	return "coach_sessions"
}
