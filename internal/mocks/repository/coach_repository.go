package repository

import (
	"context"
	"testing"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCoachRepository is a mock for repository.CoachRepository.
type MockCoachRepository struct {
	mock.Mock
}

// NewMockCoachRepository creates a mock wired to the test lifecycle.
func NewMockCoachRepository(t *testing.T) *MockCoachRepository {
	m := &MockCoachRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCoachRepository) CreateCoachSession(ctx context.Context, session *entity.CoachSession) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *MockCoachRepository) ListCoachSessionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.CoachSession, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.CoachSession), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCoachRepository) UpdateCoachSessionStatus(ctx context.Context, id uuid.UUID, status entity.CoachSessionStatus, endedAt *time.Time) error {
	args := m.Called(ctx, id, status, endedAt)

	return args.Error(0)
}
