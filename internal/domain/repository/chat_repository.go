package repository

import (
	"context"
	"errors"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChatMessageNotFound is returned when a chat message is not found.
var ErrChatMessageNotFound = errors.New("chat message not found")

// ChatRepository defines the interface for household-chat database operations.
type ChatRepository interface {
	// CreateChatMessage persists a new chat message.
	CreateChatMessage(ctx context.Context, message *entity.ChatMessage) error

	// ListChatMessagesByHousehold retrieves messages for a household ordered by
	// creation time, most recent first.
	ListChatMessagesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChatMessage, error)

	// EditChatMessage replaces the content of a message and marks it edited.
	EditChatMessage(ctx context.Context, id uuid.UUID, content string) error

	// DeleteChatMessage removes a chat message.
	DeleteChatMessage(ctx context.Context, id uuid.UUID) error
}
