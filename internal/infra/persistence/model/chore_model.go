package model

import (
	"time"

	"github.com/google/uuid"
)

// ChoreModel is the GORM-specific struct for the 'chores' table.
type ChoreModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key"`
	HouseholdID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title               string     `gorm:"type:varchar(255);not null"`
	Description         string     `gorm:"type:text"`
	AssignedTo          *uuid.UUID `gorm:"type:uuid;index"`
	AssignedBy          *uuid.UUID `gorm:"type:uuid"`
	DueDate             *time.Time
	CompletedAt         *time.Time
	Status              string `gorm:"type:varchar(16);not null;default:'pending'"`
	Priority            string `gorm:"type:varchar(8);not null;default:'medium'"`
	Category            string `gorm:"type:varchar(32);not null"`
	Points              int    `gorm:"not null;default:0"`
	RecurrenceFrequency string `gorm:"type:varchar(16)"`
	RecurrenceInterval  int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChoreModel) TableName() string {
	return "chores"
}

// ChoreCompletionModel is the GORM-specific struct for the 'chore_completions' table.
type ChoreCompletionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	ChoreID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	HouseholdID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PointsEarned int        `gorm:"not null;default:0"`
	VerifiedBy   *uuid.UUID `gorm:"type:uuid"`
	CompletedAt  time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ChoreCompletionModel) TableName() string {
	return "chore_completions"
}
