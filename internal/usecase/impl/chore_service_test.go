package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type choreMocks struct {
	chore        *mockRepo.MockChoreRepository
	notification *mockRepo.MockNotificationRepository
	household    *mockRepo.MockHouseholdRepository
}

func createTestChoreService(t *testing.T) (usecase.ChoreUsecase, choreMocks) {
	mocks := choreMocks{
		chore:        mockRepo.NewMockChoreRepository(t),
		notification: mockRepo.NewMockNotificationRepository(t),
		household:    mockRepo.NewMockHouseholdRepository(t),
	}
	factory := &mockRepo.MockRepositoryFactory{
		ChoreRepo:        mocks.chore,
		NotificationRepo: mocks.notification,
		HouseholdRepo:    mocks.household,
	}
	txManager := mockRepo.NewMockTransactionManager(t, factory)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewChoreService(mocks.chore, txManager, logger), mocks
}

func TestChoreService_CompleteChore_Success(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	choreID := uuid.New()
	householdID := uuid.New()
	completer := uuid.New()
	roommate := uuid.New()
	chore := &entity.Chore{
		ID:          choreID,
		HouseholdID: householdID,
		Title:       "Take out trash",
		Status:      entity.ChoreStatusPending,
		Points:      15,
	}

	mocks.chore.On("FindChoreByID", mock.Anything, choreID).Return(chore, nil)
	mocks.chore.On("UpdateChoreStatus", mock.Anything, choreID, entity.ChoreStatusCompleted, mock.Anything).Return(nil)
	mocks.chore.On("CreateChoreCompletion", mock.Anything, mock.Anything).Return(nil)
	mocks.household.On("FindHouseholdByID", mock.Anything, householdID).
		Return(&entity.Household{ID: householdID, MemberIDs: []uuid.UUID{completer, roommate}}, nil)
	mocks.notification.On("BatchCreateNotifications", mock.Anything, mock.MatchedBy(func(ns []*entity.Notification) bool {
		// The completer is skipped; only the other roommate is notified.
		return len(ns) == 1 && ns[0].UserID == roommate && ns[0].Type == entity.NotificationTypeSystem
	})).Return(nil)

	completion, err := svc.CompleteChore(context.Background(), choreID, completer)

	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, choreID, completion.ChoreID)
	assert.Equal(t, householdID, completion.HouseholdID)
	assert.Equal(t, completer, completion.UserID)
	assert.Equal(t, 15, completion.PointsEarned)
	assert.WithinDuration(t, time.Now(), completion.CompletedAt, time.Minute)
}

func TestChoreService_CompleteChore_AlreadyCompleted(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	choreID := uuid.New()
	mocks.chore.On("FindChoreByID", mock.Anything, choreID).Return(&entity.Chore{
		ID:     choreID,
		Status: entity.ChoreStatusCompleted,
	}, nil)

	completion, err := svc.CompleteChore(context.Background(), choreID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChoreAlreadyCompleted)
	assert.Nil(t, completion)
}

func TestChoreService_CompleteChore_ChoreNotFound(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	choreID := uuid.New()
	mocks.chore.On("FindChoreByID", mock.Anything, choreID).Return(nil, repository.ErrChoreNotFound)

	completion, err := svc.CompleteChore(context.Background(), choreID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
	assert.Nil(t, completion)
}

func TestChoreService_CompleteChore_MissingHouseholdKeepsCompletion(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	choreID := uuid.New()
	householdID := uuid.New()
	chore := &entity.Chore{
		ID:          choreID,
		HouseholdID: householdID,
		Title:       "Water the plants",
		Status:      entity.ChoreStatusPending,
		Points:      5,
	}

	mocks.chore.On("FindChoreByID", mock.Anything, choreID).Return(chore, nil)
	mocks.chore.On("UpdateChoreStatus", mock.Anything, choreID, entity.ChoreStatusCompleted, mock.Anything).Return(nil)
	mocks.chore.On("CreateChoreCompletion", mock.Anything, mock.Anything).Return(nil)
	mocks.household.On("FindHouseholdByID", mock.Anything, householdID).Return(nil, repository.ErrHouseholdNotFound)

	completion, err := svc.CompleteChore(context.Background(), choreID, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, 5, completion.PointsEarned)
}

func TestChoreService_CreateChore_DefaultsAndValidation(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	_, err := svc.CreateChore(context.Background(), usecase.CreateChoreInput{})
	require.Error(t, err)

	mocks.chore.On("CreateChore", mock.Anything, mock.Anything).Return(nil)
	assigner := uuid.New()
	chore, err := svc.CreateChore(context.Background(), usecase.CreateChoreInput{
		HouseholdID: uuid.New(),
		Title:       "Dishes",
		AssignedBy:  &assigner,
		Points:      10,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ChoreStatusPending, chore.Status)
	assert.Equal(t, entity.ChorePriorityMedium, chore.Priority)
	assert.Equal(t, entity.ChoreCategoryGeneral, chore.Category)
	require.NotNil(t, chore.AssignedBy)
	assert.Equal(t, assigner, *chore.AssignedBy)
}

func TestChoreService_ListChores_ReadFailureServesEmpty(t *testing.T) {
	svc, mocks := createTestChoreService(t)

	householdID := uuid.New()
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 50).
		Return(nil, errors.New("simulated db error"))

	chores := svc.ListChores(context.Background(), householdID, 0)

	require.NotNil(t, chores)
	assert.Empty(t, chores)
}
