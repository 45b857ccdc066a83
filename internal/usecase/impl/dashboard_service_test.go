package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roomie/config"
	"roomie/internal/domain/entity"
	mockRepo "roomie/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardMocks struct {
	household *mockRepo.MockHouseholdRepository
	rent      *mockRepo.MockRentRepository
	bill      *mockRepo.MockBillRepository
	chore     *mockRepo.MockChoreRepository
	coach     *mockRepo.MockCoachRepository
	nudge     *mockRepo.MockNudgeRepository
}

func createTestDashboardService(t *testing.T, now time.Time) (*dashboardService, dashboardMocks) {
	mocks := dashboardMocks{
		household: mockRepo.NewMockHouseholdRepository(t),
		rent:      mockRepo.NewMockRentRepository(t),
		bill:      mockRepo.NewMockBillRepository(t),
		chore:     mockRepo.NewMockChoreRepository(t),
		coach:     mockRepo.NewMockCoachRepository(t),
		nudge:     mockRepo.NewMockNudgeRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDashboardService(
		mocks.household,
		mocks.rent,
		mocks.bill,
		mocks.chore,
		mocks.coach,
		mocks.nudge,
		&config.DashboardConfig{LeaderboardSize: 5, UpcomingBills: 3, RecentWindow: 7 * 24 * time.Hour},
		logger,
	).(*dashboardService)
	svc.now = func() time.Time { return now }

	return svc, mocks
}

func expectHousehold(mocks dashboardMocks, householdID uuid.UUID) {
	mocks.household.On("FindHouseholdByID", mock.Anything, householdID).
		Return(&entity.Household{ID: householdID, MemberIDs: []uuid.UUID{uuid.New()}}, nil)
}

func expectEmptyFetches(mocks dashboardMocks, householdID uuid.UUID) {
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).Return([]*entity.RentPayment{}, nil)
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return([]*entity.Bill{}, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.ChoreCompletion{}, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.CoachSession{}, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{}, nil)
}

func TestDashboardService_GetDashboardStats_ZeroData(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	expectHousehold(mocks, householdID)
	expectEmptyFetches(mocks, householdID)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	require.NotNil(t, stats)
	assert.False(t, stats.IsFallback)
	assert.Equal(t, entity.RentSummary{}, stats.Rent)
	assert.Zero(t, stats.Bills.PendingCount)
	assert.Zero(t, stats.Bills.PendingAmount)
	assert.Zero(t, stats.Chores.PendingCount)
	assert.Zero(t, stats.Chores.TotalPoints)
	assert.Empty(t, stats.Leaderboard)
	assert.Zero(t, stats.Coach.ActiveSessions)
	assert.Zero(t, stats.Sensors.TriggeredNudges)
	assert.Equal(t, now, stats.GeneratedAt)
}

func TestDashboardService_GetDashboardStats_RentMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	expectHousehold(mocks, householdID)
	lastDayOfFebruary := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	firstOfMarch := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	payments := []*entity.RentPayment{
		{ID: uuid.New(), HouseholdID: householdID, Amount: 500, DueDate: lastDayOfFebruary, Status: entity.RentStatusPending},
		{ID: uuid.New(), HouseholdID: householdID, Amount: 700, DueDate: firstOfMarch, Status: entity.RentStatusPaid},
		{ID: uuid.New(), HouseholdID: householdID, Amount: 300, DueDate: now, Status: entity.RentStatusOverdue},
	}
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).Return(payments, nil)
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return([]*entity.Bill{}, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.ChoreCompletion{}, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.CoachSession{}, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{}, nil)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	require.NotNil(t, stats)
	// The Feb 28 payment is outside the current month; Mar 1 and Mar 15 are in.
	assert.InDelta(t, 1000.0, stats.Rent.TotalDue, 0.001)
	assert.InDelta(t, 700.0, stats.Rent.TotalPaid, 0.001)
	assert.InDelta(t, 300.0, stats.Rent.OverdueAmount, 0.001)
}

func TestDashboardService_GetDashboardStats_Leaderboard(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	userA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	userB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")
	completions := []*entity.ChoreCompletion{
		{ID: uuid.New(), UserID: userA, PointsEarned: 5, CompletedAt: now},
		{ID: uuid.New(), UserID: userB, PointsEarned: 10, CompletedAt: now},
		{ID: uuid.New(), UserID: userA, PointsEarned: 3, CompletedAt: now},
	}

	expectHousehold(mocks, householdID)
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).Return([]*entity.RentPayment{}, nil)
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return([]*entity.Bill{}, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return(completions, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.CoachSession{}, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{}, nil)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	require.Len(t, stats.Leaderboard, 2)
	assert.Equal(t, userB, stats.Leaderboard[0].UserID)
	assert.Equal(t, 10, stats.Leaderboard[0].Points)
	assert.Equal(t, 1, stats.Leaderboard[0].Completions)
	assert.Equal(t, userA, stats.Leaderboard[1].UserID)
	assert.Equal(t, 8, stats.Leaderboard[1].Points)
	assert.Equal(t, 2, stats.Leaderboard[1].Completions)
	assert.Equal(t, 3, stats.Chores.CompletedThisWeek)
}

func TestDashboardService_GetDashboardStats_BillPartition(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	bills := []*entity.Bill{
		{ID: uuid.New(), Amount: 40, DueDate: now.AddDate(0, 0, 9), Status: entity.BillStatusPending},
		{ID: uuid.New(), Amount: 60, DueDate: now.AddDate(0, 0, 2), Status: entity.BillStatusPending},
		{ID: uuid.New(), Amount: 30, DueDate: now.AddDate(0, 0, 5), Status: entity.BillStatusPending},
		{ID: uuid.New(), Amount: 25, DueDate: now.AddDate(0, 0, 12), Status: entity.BillStatusPending},
		{ID: uuid.New(), Amount: 80, DueDate: now.AddDate(0, 0, -3), Status: entity.BillStatusPaid},
		{ID: uuid.New(), Amount: 55, DueDate: now.AddDate(0, 0, -10), Status: entity.BillStatusOverdue},
	}

	expectHousehold(mocks, householdID)
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).Return([]*entity.RentPayment{}, nil)
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return(bills, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.ChoreCompletion{}, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.CoachSession{}, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{}, nil)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	assert.Equal(t, 4, stats.Bills.PendingCount)
	assert.InDelta(t, 155.0, stats.Bills.PendingAmount, 0.001)
	assert.Equal(t, 1, stats.Bills.PaidCount)
	assert.InDelta(t, 80.0, stats.Bills.PaidAmount, 0.001)
	assert.Equal(t, 1, stats.Bills.OverdueCount)
	assert.InDelta(t, 55.0, stats.Bills.OverdueAmount, 0.001)

	// Only the three soonest pending due dates, ascending.
	require.Len(t, stats.Bills.UpcomingDue, 3)
	assert.Equal(t, now.AddDate(0, 0, 2), stats.Bills.UpcomingDue[0])
	assert.Equal(t, now.AddDate(0, 0, 5), stats.Bills.UpcomingDue[1])
	assert.Equal(t, now.AddDate(0, 0, 9), stats.Bills.UpcomingDue[2])
}

func TestDashboardService_GetDashboardStats_FallbackOnHouseholdLookupFailure(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	mocks.household.On("FindHouseholdByID", mock.Anything, householdID).
		Return(nil, errors.New("simulated network error"))

	stats := svc.GetDashboardStats(context.Background(), householdID)

	require.NotNil(t, stats)
	assert.True(t, stats.IsFallback)
	// The snapshot must equal the documented safe-default constant exactly.
	assert.Equal(t, FallbackDashboardStats(householdID, now), stats)
}

func TestDashboardService_GetDashboardStats_FallbackOnFetchFailure(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	expectHousehold(mocks, householdID)
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).
		Return(nil, errors.New("connection reset"))
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return([]*entity.Bill{}, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.ChoreCompletion{}, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.CoachSession{}, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{}, nil)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	assert.True(t, stats.IsFallback)
	assert.Equal(t, FallbackDashboardStats(householdID, now), stats)
}

func TestDashboardService_GetDashboardStats_CoachSummary(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	householdID := uuid.New()
	svc, mocks := createTestDashboardService(t, now)

	recentEnd := now.AddDate(0, 0, -2)
	staleEnd := now.AddDate(0, 0, -10)
	sessions := []*entity.CoachSession{
		{ID: uuid.New(), Status: entity.CoachSessionStatusActive},
		{ID: uuid.New(), Status: entity.CoachSessionStatusActive},
		{ID: uuid.New(), Status: entity.CoachSessionStatusResolved, EndedAt: &recentEnd},
		{ID: uuid.New(), Status: entity.CoachSessionStatusResolved, EndedAt: &staleEnd},
		{ID: uuid.New(), Status: entity.CoachSessionStatusAbandoned, EndedAt: &recentEnd},
	}

	expectHousehold(mocks, householdID)
	mocks.rent.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 0).Return([]*entity.RentPayment{}, nil)
	mocks.bill.On("ListBillsByHousehold", mock.Anything, householdID, 0).Return([]*entity.Bill{}, nil)
	mocks.chore.On("ListChoresByHousehold", mock.Anything, householdID, 0).Return([]*entity.Chore{}, nil)
	mocks.chore.On("ListChoreCompletionsByHousehold", mock.Anything, householdID, 0).Return([]*entity.ChoreCompletion{}, nil)
	mocks.coach.On("ListCoachSessionsByHousehold", mock.Anything, householdID, 0).Return(sessions, nil)
	mocks.nudge.On("ListNudgesByHousehold", mock.Anything, householdID, 0).Return([]*entity.Nudge{
		{ID: uuid.New(), Type: entity.NudgeTypeSensorTriggered},
		{ID: uuid.New(), Type: entity.NudgeTypeHarmonyTip},
	}, nil)

	stats := svc.GetDashboardStats(context.Background(), householdID)

	assert.Equal(t, 2, stats.Coach.ActiveSessions)
	assert.Equal(t, 1, stats.Coach.ResolvedThisWeek)
	assert.Equal(t, 1, stats.Sensors.TriggeredNudges)
	assert.Equal(t, placeholderActiveSensors, stats.Sensors.ActiveCount)
	assert.Equal(t, placeholderRecentEvents, stats.Sensors.RecentEvents)
}
