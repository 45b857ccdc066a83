package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message in the household chat.
type ChatMessage struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Content     string     `json:"content"`
	Sentiment   string     `json:"sentiment,omitempty"` // Optional label attached by the sentiment pipeline.
	IsEdited    bool       `json:"is_edited"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
