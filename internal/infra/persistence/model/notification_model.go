package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(32);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text;not null"`
	IsRead      bool      `gorm:"not null;default:false"`
	Metadata    StringMap `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
