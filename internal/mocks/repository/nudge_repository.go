package repository

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNudgeRepository is a mock for repository.NudgeRepository.
type MockNudgeRepository struct {
	mock.Mock
}

// NewMockNudgeRepository creates a mock wired to the test lifecycle.
func NewMockNudgeRepository(t *testing.T) *MockNudgeRepository {
	m := &MockNudgeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNudgeRepository) CreateNudge(ctx context.Context, nudge *entity.Nudge) error {
	args := m.Called(ctx, nudge)

	return args.Error(0)
}

func (m *MockNudgeRepository) FindNudgeByID(ctx context.Context, id uuid.UUID) (*entity.Nudge, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Nudge), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNudgeRepository) ListNudgesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Nudge, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Nudge), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNudgeRepository) MarkNudgeRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockNudgeRepository) DismissNudge(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockNudgeRepository) DeleteNudge(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
