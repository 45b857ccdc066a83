package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChoreStatus is the lifecycle state of a chore.
type ChoreStatus string

const (
	ChoreStatusPending    ChoreStatus = "pending"
	ChoreStatusInProgress ChoreStatus = "in_progress"
	ChoreStatusCompleted  ChoreStatus = "completed"
	ChoreStatusOverdue    ChoreStatus = "overdue"
)

// Valid reports whether the status is one of the known chore states.
func (s ChoreStatus) Valid() bool {
	switch s {
	case ChoreStatusPending, ChoreStatusInProgress, ChoreStatusCompleted, ChoreStatusOverdue:
		return true
	}

	return false
}

// ChorePriority ranks how urgently a chore should be done.
type ChorePriority string

const (
	ChorePriorityLow    ChorePriority = "low"
	ChorePriorityMedium ChorePriority = "medium"
	ChorePriorityHigh   ChorePriority = "high"
)

// ChoreCategory classifies a chore by the kind of work involved.
type ChoreCategory string

const (
	ChoreCategoryKitchen  ChoreCategory = "kitchen"
	ChoreCategoryBathroom ChoreCategory = "bathroom"
	ChoreCategoryTrash    ChoreCategory = "trash"
	ChoreCategoryShopping ChoreCategory = "shopping"
	ChoreCategoryGeneral  ChoreCategory = "general"
)

// RecurrenceRule describes how often a recurring chore comes due.
type RecurrenceRule struct {
	Frequency string `json:"frequency"` // daily, weekly or monthly.
	Interval  int    `json:"interval"`  // Every N frequency units.
}

// Chore represents a household task worth a fixed number of points.
type Chore struct {
	ID          uuid.UUID       `json:"id"`
	HouseholdID uuid.UUID       `json:"household_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	AssignedTo  *uuid.UUID      `json:"assigned_to,omitempty"`
	AssignedBy  *uuid.UUID      `json:"assigned_by,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Status      ChoreStatus     `json:"status"`
	Priority    ChorePriority   `json:"priority"`
	Category    ChoreCategory   `json:"category"`
	Points      int             `json:"points"` // Point budget awarded on completion.
	Recurrence  *RecurrenceRule `json:"recurrence,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ChoreCompletion records that a user finished a chore and what it earned them.
type ChoreCompletion struct {
	ID           uuid.UUID  `json:"id"`
	ChoreID      uuid.UUID  `json:"chore_id"`
	HouseholdID  uuid.UUID  `json:"household_id"`
	UserID       uuid.UUID  `json:"user_id"`
	PointsEarned int        `json:"points_earned"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	CompletedAt  time.Time  `json:"completed_at"`
}
