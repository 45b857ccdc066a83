package model

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdModel is the GORM-specific struct for the 'households' table.
type HouseholdModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text;not null"`
	MemberIDs UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HouseholdModel) TableName() string {
	return "households"
}
