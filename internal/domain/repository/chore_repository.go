package repository

import (
	"context"
	"errors"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for chore persistence.
var (
	// ErrChoreNotFound is returned when a chore is not found.
	ErrChoreNotFound = errors.New("chore not found")
	// ErrChoreAlreadyCompleted is returned when completing a chore twice.
	ErrChoreAlreadyCompleted = errors.New("chore already completed")
)

// ChoreRepository defines the interface for chore-related database operations.
type ChoreRepository interface {
	// CreateChore persists a new chore.
	CreateChore(ctx context.Context, chore *entity.Chore) error

	// FindChoreByID retrieves a chore by its unique ID.
	FindChoreByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error)

	// ListChoresByHousehold retrieves chores for a household ordered by creation
	// time, most recent first.
	ListChoresByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Chore, error)

	// UpdateChoreStatus sets the status of a chore; a completed status also
	// records the completion time.
	UpdateChoreStatus(ctx context.Context, id uuid.UUID, status entity.ChoreStatus, completedAt *time.Time) error

	// AssignChore sets or clears the assignee of a chore.
	AssignChore(ctx context.Context, id uuid.UUID, assignedTo *uuid.UUID, assignedBy uuid.UUID) error

	// DeleteChore removes a chore.
	DeleteChore(ctx context.Context, id uuid.UUID) error

	// CreateChoreCompletion records that a user finished a chore.
	CreateChoreCompletion(ctx context.Context, completion *entity.ChoreCompletion) error

	// ListChoreCompletionsByHousehold retrieves completions for a household
	// ordered by completion time, most recent first.
	ListChoreCompletionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChoreCompletion, error)
}
