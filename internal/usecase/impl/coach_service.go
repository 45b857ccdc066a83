package impl

import (
	"context"
	"log/slog"
	"time"

	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/errors"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type coachService struct {
	coachRepo repository.CoachRepository
	logger    *slog.Logger
}

// NewCoachService creates a new conflict-coach service instance
func NewCoachService(coachRepo repository.CoachRepository, logger *slog.Logger) usecase.CoachUsecase {
	return &coachService{
		coachRepo: coachRepo,
		logger:    logger,
	}
}

// ListCoachSessions returns a household's sessions, most recently started
// first. A failed read is logged and served as an empty list.
func (s *coachService) ListCoachSessions(ctx context.Context, householdID uuid.UUID, limit int) []*entity.CoachSession {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	sessions, err := s.coachRepo.ListCoachSessionsByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list coach sessions, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("coach_sessions")

		return []*entity.CoachSession{}
	}

	return sessions
}

// StartCoachSession opens a new mediated conversation.
func (s *coachService) StartCoachSession(ctx context.Context, householdID uuid.UUID, topic string, participants []uuid.UUID) (*entity.CoachSession, error) {
	if topic == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("topic is required")
	}
	if len(participants) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one participant is required")
	}

	now := time.Now()
	session := &entity.CoachSession{
		ID:           uuid.New(),
		HouseholdID:  householdID,
		Topic:        topic,
		Participants: participants,
		Status:       entity.CoachSessionStatusActive,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.coachRepo.CreateCoachSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateCoachSessionStatus moves a session through its lifecycle. Resolving or
// abandoning records the end time.
func (s *coachService) UpdateCoachSessionStatus(ctx context.Context, id uuid.UUID, status entity.CoachSessionStatus) error {
	var endedAt *time.Time
	if status == entity.CoachSessionStatusResolved || status == entity.CoachSessionStatusAbandoned {
		now := time.Now()
		endedAt = &now
	}

	if err := s.coachRepo.UpdateCoachSessionStatus(ctx, id, status, endedAt); err != nil {
		if errors.Is(err, repository.ErrCoachSessionNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
