package impl

import (
	"context"
	"log/slog"

	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/errors"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ListNotifications returns a user's notifications within a household, newest
// first. A failed read is logged and served as an empty list.
func (s *notificationService) ListNotifications(ctx context.Context, userID, householdID uuid.UUID, limit int) []*entity.Notification {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list notifications, serving empty",
			slog.String("user_id", userID.String()),
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("notifications")

		return []*entity.Notification{}
	}

	return notifications
}

// MarkNotificationRead flags a notification as read.
func (s *notificationService) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteNotification removes a notification.
func (s *notificationService) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationRepo.DeleteNotification(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
