package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for per-user notification use cases
type NotificationUsecase interface {
	// ListNotifications returns a user's notifications within a household,
	// newest first. Read failures are logged and produce an empty list, never
	// an error.
	ListNotifications(ctx context.Context, userID, householdID uuid.UUID, limit int) []*entity.Notification

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
