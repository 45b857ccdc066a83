package repository

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository is a mock for repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates a mock wired to the test lifecycle.
func NewMockNotificationRepository(t *testing.T) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *MockNotificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	args := m.Called(ctx, notifications)

	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, userID, householdID uuid.UUID, limit int) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Notification), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
