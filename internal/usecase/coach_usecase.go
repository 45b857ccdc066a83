package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CoachUsecase defines the interface for conflict-coach session use cases
type CoachUsecase interface {
	// ListCoachSessions returns a household's sessions, most recently started
	// first. Read failures are logged and produce an empty list, never an error.
	ListCoachSessions(ctx context.Context, householdID uuid.UUID, limit int) []*entity.CoachSession

	// StartCoachSession opens a new mediated conversation.
	StartCoachSession(ctx context.Context, householdID uuid.UUID, topic string, participants []uuid.UUID) (*entity.CoachSession, error)

	// UpdateCoachSessionStatus moves a session through its lifecycle; resolving
	// or abandoning records the end time.
	UpdateCoachSessionStatus(ctx context.Context, id uuid.UUID, status entity.CoachSessionStatus) error
}
