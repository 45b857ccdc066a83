package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel is the GORM-specific struct for the 'chat_messages' table.
type ChatMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	Sentiment   string    `gorm:"type:varchar(32)"`
	IsEdited    bool      `gorm:"not null;default:false"`
	EditedAt    *time.Time
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
