package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the interface for household chat use cases
type ChatUsecase interface {
	// ListChatMessages returns a household's messages, newest first. Read
	// failures are logged and produce an empty list, never an error.
	ListChatMessages(ctx context.Context, householdID uuid.UUID, limit int) []*entity.ChatMessage

	// SendChatMessage stores a new message from one roommate.
	SendChatMessage(ctx context.Context, householdID, userID uuid.UUID, content string) (*entity.ChatMessage, error)

	// EditChatMessage replaces the content of a message and marks it edited.
	EditChatMessage(ctx context.Context, id uuid.UUID, content string) error

	// DeleteChatMessage removes a message.
	DeleteChatMessage(ctx context.Context, id uuid.UUID) error
}
