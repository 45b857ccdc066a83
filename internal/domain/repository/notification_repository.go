package repository

import (
	"context"
	"errors"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new per-user notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// BatchCreateNotifications persists multiple notifications in one batch.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// ListNotificationsByUser retrieves a user's notifications within a
	// household ordered by creation time, most recent first.
	ListNotificationsByUser(ctx context.Context, userID, householdID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
