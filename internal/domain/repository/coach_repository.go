package repository

import (
	"context"
	"errors"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCoachSessionNotFound is returned when a coach session is not found.
var ErrCoachSessionNotFound = errors.New("coach session not found")

// CoachRepository defines the interface for conflict-coach session persistence.
type CoachRepository interface {
	// CreateCoachSession persists a new coach session.
	CreateCoachSession(ctx context.Context, session *entity.CoachSession) error

	// ListCoachSessionsByHousehold retrieves sessions for a household ordered by
	// start time, most recent first.
	ListCoachSessionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.CoachSession, error)

	// UpdateCoachSessionStatus sets the status of a session; terminal statuses
	// also record the end time.
	UpdateCoachSessionStatus(ctx context.Context, id uuid.UUID, status entity.CoachSessionStatus, endedAt *time.Time) error
}
