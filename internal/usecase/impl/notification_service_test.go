package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	mockRepo "roomie/internal/mocks/repository"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	repo := mockRepo.NewMockNotificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNotificationService(repo, logger), repo
}

func TestNotificationService_ListNotifications_Success(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	userID := uuid.New()
	householdID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, HouseholdID: householdID, Title: "New chore"},
	}
	repo.On("ListNotificationsByUser", mock.Anything, userID, householdID, 50).Return(expected, nil)

	notifications := svc.ListNotifications(context.Background(), userID, householdID, 0)

	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListNotifications_ReadFailureServesEmpty(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	userID := uuid.New()
	householdID := uuid.New()
	repo.On("ListNotificationsByUser", mock.Anything, userID, householdID, 20).
		Return(nil, errors.New("simulated db error"))

	notifications := svc.ListNotifications(context.Background(), userID, householdID, 20)

	require.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

func TestNotificationService_MarkNotificationRead_NotFound(t *testing.T) {
	svc, repo := createTestNotificationService(t)

	id := uuid.New()
	repo.On("MarkNotificationRead", mock.Anything, id).Return(repository.ErrNotificationNotFound)

	err := svc.MarkNotificationRead(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}
