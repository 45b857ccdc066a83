package repository

import (
	"context"
	"testing"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChoreRepository is a mock for repository.ChoreRepository.
type MockChoreRepository struct {
	mock.Mock
}

// NewMockChoreRepository creates a mock wired to the test lifecycle.
func NewMockChoreRepository(t *testing.T) *MockChoreRepository {
	m := &MockChoreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockChoreRepository) CreateChore(ctx context.Context, chore *entity.Chore) error {
	args := m.Called(ctx, chore)

	return args.Error(0)
}

func (m *MockChoreRepository) FindChoreByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Chore), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChoreRepository) ListChoresByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Chore, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Chore), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChoreRepository) UpdateChoreStatus(ctx context.Context, id uuid.UUID, status entity.ChoreStatus, completedAt *time.Time) error {
	args := m.Called(ctx, id, status, completedAt)

	return args.Error(0)
}

func (m *MockChoreRepository) AssignChore(ctx context.Context, id uuid.UUID, assignedTo *uuid.UUID, assignedBy uuid.UUID) error {
	args := m.Called(ctx, id, assignedTo, assignedBy)

	return args.Error(0)
}

func (m *MockChoreRepository) DeleteChore(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockChoreRepository) CreateChoreCompletion(ctx context.Context, completion *entity.ChoreCompletion) error {
	args := m.Called(ctx, completion)

	return args.Error(0)
}

func (m *MockChoreRepository) ListChoreCompletionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChoreCompletion, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ChoreCompletion), args.Error(1)
	}

	return nil, args.Error(1)
}
