package postgres

import (
	"context"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new per-user notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// BatchCreateNotifications persists multiple notifications in one batch.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).Create(&notificationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	return nil
}

// ListNotificationsByUser retrieves a user's notifications within a household
// ordered by creation time, most recent first.
func (repo *notificationRepository) ListNotificationsByUser(ctx context.Context, userID, householdID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND household_id = ?", userID, householdID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flags a notification as read.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteNotification removes a notification.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		HouseholdID: data.HouseholdID,
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
		Metadata:    data.Metadata,
		CreatedAt:   data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		HouseholdID: data.HouseholdID,
		Type:        string(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
		Metadata:    data.Metadata,
		CreatedAt:   data.CreatedAt,
	}
}
