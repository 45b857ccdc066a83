package entity

import (
	"time"

	"github.com/google/uuid"
)

// NudgeType classifies what prompted a nudge.
type NudgeType string

const (
	NudgeTypeChoreReminder   NudgeType = "chore_reminder"
	NudgeTypeBillReminder    NudgeType = "bill_reminder"
	NudgeTypeRentReminder    NudgeType = "rent_reminder"
	NudgeTypeSensorTriggered NudgeType = "sensor_triggered"
	NudgeTypeHarmonyTip      NudgeType = "harmony_tip"
)

// NudgePriority ranks how prominently a nudge should surface.
type NudgePriority string

const (
	NudgePriorityLow    NudgePriority = "low"
	NudgePriorityMedium NudgePriority = "medium"
	NudgePriorityHigh   NudgePriority = "high"
)

// Nudge is a gentle prompt shown to some or all roommates in a household.
type Nudge struct {
	ID          uuid.UUID     `json:"id"`
	HouseholdID uuid.UUID     `json:"household_id"`
	Title       string        `json:"title"`
	Message     string        `json:"message"`
	Type        NudgeType     `json:"type"`
	Priority    NudgePriority `json:"priority"`
	TargetUsers []uuid.UUID   `json:"target_users"` // Empty means the whole household.
	IsRead      bool          `json:"is_read"`
	IsDismissed bool          `json:"is_dismissed"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
	ActionURL   string        `json:"action_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
