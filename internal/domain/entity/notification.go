package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a per-user notification.
type NotificationType string

const (
	NotificationTypeChoreAssigned NotificationType = "chore_assigned"
	NotificationTypeBillDue       NotificationType = "bill_due"
	NotificationTypeRentDue       NotificationType = "rent_due"
	NotificationTypeNudge         NotificationType = "nudge"
	NotificationTypeSystem        NotificationType = "system"
)

// Notification is a message addressed to one user within one household.
type Notification struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	HouseholdID uuid.UUID         `json:"household_id"`
	Type        NotificationType  `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	IsRead      bool              `json:"is_read"`
	Metadata    map[string]string `json:"metadata,omitempty"` // Free-form context bag, e.g. the triggering entity ID.
	CreatedAt   time.Time         `json:"created_at"`
}
