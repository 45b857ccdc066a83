package repository

import (
	"context"
	"errors"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNudgeNotFound is returned when a nudge is not found.
var ErrNudgeNotFound = errors.New("nudge not found")

// NudgeRepository defines the interface for nudge-related database operations.
type NudgeRepository interface {
	// CreateNudge persists a new nudge.
	CreateNudge(ctx context.Context, nudge *entity.Nudge) error

	// FindNudgeByID retrieves a nudge by its unique ID.
	FindNudgeByID(ctx context.Context, id uuid.UUID) (*entity.Nudge, error)

	// ListNudgesByHousehold retrieves nudges for a household ordered by creation
	// time, most recent first.
	ListNudgesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Nudge, error)

	// MarkNudgeRead flags a nudge as read.
	MarkNudgeRead(ctx context.Context, id uuid.UUID) error

	// DismissNudge flags a nudge as dismissed.
	DismissNudge(ctx context.Context, id uuid.UUID) error

	// DeleteNudge removes a nudge.
	DeleteNudge(ctx context.Context, id uuid.UUID) error
}
