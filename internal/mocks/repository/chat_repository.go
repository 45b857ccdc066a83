package repository

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChatRepository is a mock for repository.ChatRepository.
type MockChatRepository struct {
	mock.Mock
}

// NewMockChatRepository creates a mock wired to the test lifecycle.
func NewMockChatRepository(t *testing.T) *MockChatRepository {
	m := &MockChatRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockChatRepository) CreateChatMessage(ctx context.Context, message *entity.ChatMessage) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockChatRepository) ListChatMessagesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChatMessage, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ChatMessage), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChatRepository) EditChatMessage(ctx context.Context, id uuid.UUID, content string) error {
	args := m.Called(ctx, id, content)

	return args.Error(0)
}

func (m *MockChatRepository) DeleteChatMessage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
