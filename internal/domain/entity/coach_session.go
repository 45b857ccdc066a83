package entity

import (
	"time"

	"github.com/google/uuid"
)

// CoachSessionStatus is the lifecycle state of a conflict-coach session.
type CoachSessionStatus string

const (
	CoachSessionStatusActive    CoachSessionStatus = "active"
	CoachSessionStatusResolved  CoachSessionStatus = "resolved"
	CoachSessionStatusAbandoned CoachSessionStatus = "abandoned"
)

// CoachSession represents one mediated conflict conversation between roommates.
type CoachSession struct {
	ID           uuid.UUID          `json:"id"`
	HouseholdID  uuid.UUID          `json:"household_id"`
	Topic        string             `json:"topic"`
	Participants []uuid.UUID        `json:"participants"`
	Status       CoachSessionStatus `json:"status"`
	StartedAt    time.Time          `json:"started_at"`
	EndedAt      *time.Time         `json:"ended_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
