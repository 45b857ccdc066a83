package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roomie/internal/domain/entity"
	mockRepo "roomie/internal/mocks/repository"
	mockSvc "roomie/internal/mocks/service"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nudgeMocks struct {
	nudge     *mockRepo.MockNudgeRepository
	publisher *mockSvc.MockEventPublisher
	push      *mockSvc.MockPushNotifier
}

func createTestNudgeService(t *testing.T) (usecase.NudgeUsecase, nudgeMocks) {
	mocks := nudgeMocks{
		nudge:     mockRepo.NewMockNudgeRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		push:      mockSvc.NewMockPushNotifier(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNudgeService(mocks.nudge, mocks.publisher, mocks.push, logger), mocks
}

func TestNudgeService_CreateNudge_Success(t *testing.T) {
	svc, mocks := createTestNudgeService(t)

	householdID := uuid.New()
	mocks.nudge.On("CreateNudge", mock.Anything, mock.Anything).Return(nil)
	mocks.publisher.On("PublishNudgeEvent", mock.Anything, mock.Anything).Return(nil)
	mocks.push.On("SendHouseholdPush", mock.Anything, householdID.String(), "Rent due soon", "Rent is due on the 1st", mock.Anything).
		Return(nil)

	nudge, err := svc.CreateNudge(context.Background(), usecase.CreateNudgeInput{
		HouseholdID: householdID,
		Title:       "Rent due soon",
		Message:     "Rent is due on the 1st",
		Type:        entity.NudgeTypeRentReminder,
	})

	require.NoError(t, err)
	require.NotNil(t, nudge)
	assert.Equal(t, entity.NudgePriorityMedium, nudge.Priority)
	assert.False(t, nudge.IsRead)
}

func TestNudgeService_CreateNudge_FanOutFailuresAreBestEffort(t *testing.T) {
	svc, mocks := createTestNudgeService(t)

	mocks.nudge.On("CreateNudge", mock.Anything, mock.Anything).Return(nil)
	mocks.publisher.On("PublishNudgeEvent", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))
	mocks.push.On("SendHouseholdPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	nudge, err := svc.CreateNudge(context.Background(), usecase.CreateNudgeInput{
		HouseholdID: uuid.New(),
		Title:       "Quiet hours",
		Message:     "It is past 10pm",
		Type:        entity.NudgeTypeHarmonyTip,
	})

	// Delivery failures never surface: the nudge is already stored.
	require.NoError(t, err)
	require.NotNil(t, nudge)
}

func TestNudgeService_CreateNudge_ValidationFailure(t *testing.T) {
	svc, _ := createTestNudgeService(t)

	_, err := svc.CreateNudge(context.Background(), usecase.CreateNudgeInput{
		HouseholdID: uuid.New(),
		Title:       "No message",
	})

	require.Error(t, err)
}

func TestNudgeService_CreateNudge_StoreFailureSkipsFanOut(t *testing.T) {
	svc, mocks := createTestNudgeService(t)

	mocks.nudge.On("CreateNudge", mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	nudge, err := svc.CreateNudge(context.Background(), usecase.CreateNudgeInput{
		HouseholdID: uuid.New(),
		Title:       "Dishes piling up",
		Message:     "Sink sensor is unhappy",
		Type:        entity.NudgeTypeSensorTriggered,
	})

	require.Error(t, err)
	assert.Nil(t, nudge)
	mocks.publisher.AssertNotCalled(t, "PublishNudgeEvent", mock.Anything, mock.Anything)
	mocks.push.AssertNotCalled(t, "SendHouseholdPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNudgeService_ListNudges_ReadFailureServesEmpty(t *testing.T) {
	svc, mocks := createTestNudgeService(t)

	householdID := uuid.New()
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 50).
		Return(nil, errors.New("simulated db error"))

	nudges := svc.ListNudges(context.Background(), householdID, -1)

	require.NotNil(t, nudges)
	assert.Empty(t, nudges)
}
