package impl

import (
	"context"
	"log/slog"
	"time"

	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/domain/service"
	"roomie/internal/errors"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type nudgeService struct {
	nudgeRepo      repository.NudgeRepository
	eventPublisher service.EventPublisher
	pushNotifier   service.PushNotifier
	logger         *slog.Logger
}

// NewNudgeService creates a new nudge service instance
func NewNudgeService(
	nudgeRepo repository.NudgeRepository,
	eventPublisher service.EventPublisher,
	pushNotifier service.PushNotifier,
	logger *slog.Logger,
) usecase.NudgeUsecase {
	return &nudgeService{
		nudgeRepo:      nudgeRepo,
		eventPublisher: eventPublisher,
		pushNotifier:   pushNotifier,
		logger:         logger,
	}
}

// ListNudges returns a household's nudges, newest first. A failed read is
// logged and served as an empty list.
func (s *nudgeService) ListNudges(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Nudge {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	nudges, err := s.nudgeRepo.ListNudgesByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list nudges, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("nudges")

		return []*entity.Nudge{}
	}

	return nudges
}

// CreateNudge stores a nudge, then publishes a nudge event and sends a
// household push. Event and push failures are logged, never surfaced.
func (s *nudgeService) CreateNudge(ctx context.Context, input usecase.CreateNudgeInput) (*entity.Nudge, error) {
	if input.Title == "" || input.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and message are required")
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.NudgePriorityMedium
	}

	now := time.Now()
	nudge := &entity.Nudge{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Title:       input.Title,
		Message:     input.Message,
		Type:        input.Type,
		Priority:    priority,
		TargetUsers: input.TargetUsers,
		ExpiresAt:   input.ExpiresAt,
		ActionURL:   input.ActionURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.nudgeRepo.CreateNudge(ctx, nudge); err != nil {
		return nil, err
	}

	s.fanOut(ctx, nudge)

	return nudge, nil
}

// fanOut delivers the created nudge to the event stream and the household
// push topic. Both paths are best-effort.
func (s *nudgeService) fanOut(ctx context.Context, nudge *entity.Nudge) {
	targets := make([]string, 0, len(nudge.TargetUsers))
	for _, id := range nudge.TargetUsers {
		targets = append(targets, id.String())
	}

	event := &service.NudgeEvent{
		NudgeID:     nudge.ID.String(),
		HouseholdID: nudge.HouseholdID.String(),
		Type:        string(nudge.Type),
		Priority:    string(nudge.Priority),
		Title:       nudge.Title,
		Message:     nudge.Message,
		TargetUsers: targets,
	}

	if err := s.eventPublisher.PublishNudgeEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish nudge event",
			slog.String("nudge_id", nudge.ID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveNudgePublish(metrics.ResultError)
	} else {
		metrics.ObserveNudgePublish(metrics.ResultOK)
	}

	pushData := map[string]string{
		"nudge_id":   nudge.ID.String(),
		"nudge_type": string(nudge.Type),
	}
	if err := s.pushNotifier.SendHouseholdPush(ctx, nudge.HouseholdID.String(), nudge.Title, nudge.Message, pushData); err != nil {
		s.logger.Error("failed to send household push",
			slog.String("nudge_id", nudge.ID.String()),
			slog.Any("error", err),
		)
	}
}

// MarkNudgeRead flags a nudge as read.
func (s *nudgeService) MarkNudgeRead(ctx context.Context, id uuid.UUID) error {
	if err := s.nudgeRepo.MarkNudgeRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNudgeNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DismissNudge flags a nudge as dismissed.
func (s *nudgeService) DismissNudge(ctx context.Context, id uuid.UUID) error {
	if err := s.nudgeRepo.DismissNudge(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNudgeNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteNudge removes a nudge.
func (s *nudgeService) DeleteNudge(ctx context.Context, id uuid.UUID) error {
	if err := s.nudgeRepo.DeleteNudge(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNudgeNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
