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

type chatService struct {
	chatRepo repository.ChatRepository
	logger   *slog.Logger
}

// NewChatService creates a new household chat service instance
func NewChatService(chatRepo repository.ChatRepository, logger *slog.Logger) usecase.ChatUsecase {
	return &chatService{
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// ListChatMessages returns a household's messages, newest first. A failed read
// is logged and served as an empty list.
func (s *chatService) ListChatMessages(ctx context.Context, householdID uuid.UUID, limit int) []*entity.ChatMessage {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	messages, err := s.chatRepo.ListChatMessagesByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list chat messages, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("chat_messages")

		return []*entity.ChatMessage{}
	}

	return messages
}

// SendChatMessage stores a new message from one roommate.
func (s *chatService) SendChatMessage(ctx context.Context, householdID, userID uuid.UUID, content string) (*entity.ChatMessage, error) {
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	message := &entity.ChatMessage{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		Content:     content,
		CreatedAt:   time.Now(),
	}

	if err := s.chatRepo.CreateChatMessage(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// EditChatMessage replaces the content of a message and marks it edited.
func (s *chatService) EditChatMessage(ctx context.Context, id uuid.UUID, content string) error {
	if content == "" {
		return domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	if err := s.chatRepo.EditChatMessage(ctx, id, content); err != nil {
		if errors.Is(err, repository.ErrChatMessageNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteChatMessage removes a message.
func (s *chatService) DeleteChatMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.chatRepo.DeleteChatMessage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrChatMessageNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
