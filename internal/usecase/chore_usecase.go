package usecase

import (
	"context"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateChoreInput carries the fields needed to put a chore on the board.
type CreateChoreInput struct {
	HouseholdID uuid.UUID              `json:"household_id" validate:"required"`
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	AssignedTo  *uuid.UUID             `json:"assigned_to"`
	AssignedBy  *uuid.UUID             `json:"assigned_by"`
	DueDate     *time.Time             `json:"due_date"`
	Priority    entity.ChorePriority   `json:"priority"`
	Category    entity.ChoreCategory   `json:"category"`
	Points      int                    `json:"points" validate:"min=0"`
	Recurrence  *entity.RecurrenceRule `json:"recurrence"`
}

// ChoreUsecase defines the interface for chore management use cases
type ChoreUsecase interface {
	// ListChores returns a household's chores, newest first. Read failures are
	// logged and produce an empty list, never an error.
	ListChores(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Chore

	// ListChoreCompletions returns a household's completion records, newest
	// first, with the same read-failure policy.
	ListChoreCompletions(ctx context.Context, householdID uuid.UUID, limit int) []*entity.ChoreCompletion

	// CreateChore puts a new chore on the board.
	CreateChore(ctx context.Context, input CreateChoreInput) (*entity.Chore, error)

	// CompleteChore marks a chore completed and records a completion with the
	// chore's point value for the completing user, atomically.
	CompleteChore(ctx context.Context, choreID, userID uuid.UUID) (*entity.ChoreCompletion, error)

	// AssignChore sets or clears the assignee of a chore.
	AssignChore(ctx context.Context, choreID uuid.UUID, assignedTo *uuid.UUID, assignedBy uuid.UUID) error

	// DeleteChore removes a chore.
	DeleteChore(ctx context.Context, id uuid.UUID) error
}
