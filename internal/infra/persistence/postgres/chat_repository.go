package postgres

import (
	"context"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateChatMessage persists a new chat message.
func (repo *chatRepository) CreateChatMessage(ctx context.Context, message *entity.ChatMessage) error {
	messageM := fromChatMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListChatMessagesByHousehold retrieves messages for a household ordered by creation time, most recent first.
func (repo *chatRepository) ListChatMessagesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages by household")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// EditChatMessage replaces the content of a message and marks it edited.
func (repo *chatRepository) EditChatMessage(ctx context.Context, id uuid.UUID, content string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
			"edited_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to edit chat message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChatMessageNotFound
	}

	return nil
}

// DeleteChatMessage removes a chat message.
func (repo *chatRepository) DeleteChatMessage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChatMessageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete chat message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChatMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		Content:     data.Content,
		Sentiment:   data.Sentiment,
		IsEdited:    data.IsEdited,
		EditedAt:    data.EditedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		UserID:      data.UserID,
		Content:     data.Content,
		Sentiment:   data.Sentiment,
		IsEdited:    data.IsEdited,
		EditedAt:    data.EditedAt,
		CreatedAt:   data.CreatedAt,
	}
}
