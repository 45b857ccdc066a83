package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"roomie/config"
	"roomie/internal/domain/entity"
	"roomie/internal/domain/repository"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Sensor summary placeholders. Per-reading history is not persisted yet, so
// these two numbers are fixed; only the triggered-nudge count is computed.
const (
	placeholderActiveSensors = 3
	placeholderRecentEvents  = 12
)

type dashboardService struct {
	householdRepo repository.HouseholdRepository
	rentRepo      repository.RentRepository
	billRepo      repository.BillRepository
	choreRepo     repository.ChoreRepository
	coachRepo     repository.CoachRepository
	nudgeRepo     repository.NudgeRepository
	cfg           *config.DashboardConfig
	logger        *slog.Logger
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	householdRepo repository.HouseholdRepository,
	rentRepo repository.RentRepository,
	billRepo repository.BillRepository,
	choreRepo repository.ChoreRepository,
	coachRepo repository.CoachRepository,
	nudgeRepo repository.NudgeRepository,
	cfg *config.DashboardConfig,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		householdRepo: householdRepo,
		rentRepo:      rentRepo,
		billRepo:      billRepo,
		choreRepo:     choreRepo,
		coachRepo:     coachRepo,
		nudgeRepo:     nudgeRepo,
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
	}
}

// GetDashboardStats assembles the harmony snapshot for a household. Any
// data-layer failure along the way yields the safe-default snapshot with
// IsFallback set, never an error: the dashboard must not crash.
func (s *dashboardService) GetDashboardStats(ctx context.Context, householdID uuid.UUID) *entity.DashboardStats {
	started := s.now()

	stats, err := s.build(ctx, householdID)
	if err != nil {
		s.logger.Error("dashboard aggregation failed, serving fallback",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveDashboardBuild(metrics.ResultFallback, time.Since(started))

		return FallbackDashboardStats(householdID, s.now())
	}

	metrics.ObserveDashboardBuild(metrics.ResultOK, time.Since(started))

	return stats
}

func (s *dashboardService) build(ctx context.Context, householdID uuid.UUID) (*entity.DashboardStats, error) {
	// The household lookup gates everything else: an unknown household must not
	// produce a plausible-looking all-zero dashboard.
	if _, err := s.householdRepo.FindHouseholdByID(ctx, householdID); err != nil {
		return nil, err
	}

	var (
		payments    []*entity.RentPayment
		bills       []*entity.Bill
		chores      []*entity.Chore
		completions []*entity.ChoreCompletion
		sessions    []*entity.CoachSession
		nudges      []*entity.Nudge
	)

	// Six independent reads, issued concurrently. Limit 0 means unbounded: the
	// aggregation needs the full picture, not the first page.
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		payments, err = s.rentRepo.ListRentPaymentsByHousehold(groupCtx, householdID, 0)

		return err
	})
	group.Go(func() (err error) {
		bills, err = s.billRepo.ListBillsByHousehold(groupCtx, householdID, 0)

		return err
	})
	group.Go(func() (err error) {
		chores, err = s.choreRepo.ListChoresByHousehold(groupCtx, householdID, 0)

		return err
	})
	group.Go(func() (err error) {
		completions, err = s.choreRepo.ListChoreCompletionsByHousehold(groupCtx, householdID, 0)

		return err
	})
	group.Go(func() (err error) {
		sessions, err = s.coachRepo.ListCoachSessionsByHousehold(groupCtx, householdID, 0)

		return err
	})
	group.Go(func() (err error) {
		nudges, err = s.nudgeRepo.ListNudgesByHousehold(groupCtx, householdID, 0)

		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.Add(-s.recentWindow())

	return &entity.DashboardStats{
		HouseholdID: householdID,
		Rent:        summarizeRent(payments, now),
		Bills:       s.summarizeBills(bills),
		Chores:      summarizeChores(chores, completions, weekAgo),
		Leaderboard: buildLeaderboard(completions, s.leaderboardSize()),
		Coach:       summarizeCoach(sessions, weekAgo),
		Sensors:     summarizeSensors(nudges),
		GeneratedAt: now,
	}, nil
}

// summarizeRent folds the current calendar month's payments, by due date, into
// due / paid / overdue totals. Payments due in other months are ignored.
func summarizeRent(payments []*entity.RentPayment, now time.Time) entity.RentSummary {
	var summary entity.RentSummary
	for _, payment := range payments {
		if payment.DueDate.Year() != now.Year() || payment.DueDate.Month() != now.Month() {
			continue
		}

		summary.TotalDue += payment.Amount
		switch payment.Status {
		case entity.RentStatusPaid:
			summary.TotalPaid += payment.Amount
		case entity.RentStatusOverdue:
			summary.OverdueAmount += payment.Amount
		}
	}

	return summary
}

// summarizeBills partitions bills by status and collects the soonest pending
// due dates.
func (s *dashboardService) summarizeBills(bills []*entity.Bill) entity.BillSummary {
	var summary entity.BillSummary
	var pendingDue []time.Time

	for _, bill := range bills {
		switch bill.Status {
		case entity.BillStatusPending:
			summary.PendingCount++
			summary.PendingAmount += bill.Amount
			pendingDue = append(pendingDue, bill.DueDate)
		case entity.BillStatusPaid:
			summary.PaidCount++
			summary.PaidAmount += bill.Amount
		case entity.BillStatusOverdue:
			summary.OverdueCount++
			summary.OverdueAmount += bill.Amount
		}
	}

	sort.Slice(pendingDue, func(i, j int) bool { return pendingDue[i].Before(pendingDue[j]) })
	if max := s.upcomingBills(); len(pendingDue) > max {
		pendingDue = pendingDue[:max]
	}
	summary.UpcomingDue = pendingDue

	return summary
}

// summarizeChores counts open chores and recent completions. TotalPoints sums
// the point budget of every chore on the board, completed or not.
func summarizeChores(chores []*entity.Chore, completions []*entity.ChoreCompletion, weekAgo time.Time) entity.ChoreSummary {
	var summary entity.ChoreSummary
	for _, chore := range chores {
		if chore.Status != entity.ChoreStatusCompleted {
			summary.PendingCount++
		}
		summary.TotalPoints += chore.Points
	}
	for _, completion := range completions {
		if completion.CompletedAt.After(weekAgo) {
			summary.CompletedThisWeek++
		}
	}

	return summary
}

// buildLeaderboard folds completions into per-user totals and returns the top
// entries sorted by points earned, descending.
func buildLeaderboard(completions []*entity.ChoreCompletion, size int) []entity.LeaderboardEntry {
	totals := make(map[uuid.UUID]*entity.LeaderboardEntry)
	for _, completion := range completions {
		entry, ok := totals[completion.UserID]
		if !ok {
			entry = &entity.LeaderboardEntry{UserID: completion.UserID}
			totals[completion.UserID] = entry
		}
		entry.Points += completion.PointsEarned
		entry.Completions++
	}

	leaderboard := make([]entity.LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		leaderboard = append(leaderboard, *entry)
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		if leaderboard[i].Points != leaderboard[j].Points {
			return leaderboard[i].Points > leaderboard[j].Points
		}
		if leaderboard[i].Completions != leaderboard[j].Completions {
			return leaderboard[i].Completions > leaderboard[j].Completions
		}

		return leaderboard[i].UserID.String() < leaderboard[j].UserID.String()
	})

	if len(leaderboard) > size {
		leaderboard = leaderboard[:size]
	}

	return leaderboard
}

// summarizeCoach counts active sessions and those resolved inside the window.
func summarizeCoach(sessions []*entity.CoachSession, weekAgo time.Time) entity.CoachSummary {
	var summary entity.CoachSummary
	for _, session := range sessions {
		if session.Status == entity.CoachSessionStatusActive {
			summary.ActiveSessions++
		}
		if session.Status == entity.CoachSessionStatusResolved &&
			session.EndedAt != nil && session.EndedAt.After(weekAgo) {
			summary.ResolvedThisWeek++
		}
	}

	return summary
}

// summarizeSensors derives the triggered-nudge count; the other two fields are
// fixed placeholders until per-reading history lands.
func summarizeSensors(nudges []*entity.Nudge) entity.SensorSummary {
	triggered := 0
	for _, nudge := range nudges {
		if nudge.Type == entity.NudgeTypeSensorTriggered {
			triggered++
		}
	}

	return entity.SensorSummary{
		ActiveCount:     placeholderActiveSensors,
		RecentEvents:    placeholderRecentEvents,
		TriggeredNudges: triggered,
	}
}

func (s *dashboardService) leaderboardSize() int {
	if s.cfg != nil && s.cfg.LeaderboardSize > 0 {
		return s.cfg.LeaderboardSize
	}

	return 5
}

func (s *dashboardService) upcomingBills() int {
	if s.cfg != nil && s.cfg.UpcomingBills > 0 {
		return s.cfg.UpcomingBills
	}

	return 3
}

func (s *dashboardService) recentWindow() time.Duration {
	if s.cfg != nil && s.cfg.RecentWindow > 0 {
		return s.cfg.RecentWindow
	}

	return 7 * 24 * time.Hour
}

// FallbackDashboardStats is the safe-default snapshot served when aggregation
// fails. The numbers are fixed so clients and tests can rely on them; the
// IsFallback flag is what tells a caller these are not real.
func FallbackDashboardStats(householdID uuid.UUID, now time.Time) *entity.DashboardStats {
	return &entity.DashboardStats{
		HouseholdID: householdID,
		Rent: entity.RentSummary{
			TotalDue:      2400,
			TotalPaid:     1600,
			OverdueAmount: 0,
		},
		Bills: entity.BillSummary{
			PendingCount:  3,
			PendingAmount: 145.50,
			PaidCount:     5,
			PaidAmount:    420,
			OverdueCount:  1,
			OverdueAmount: 60,
		},
		Chores: entity.ChoreSummary{
			PendingCount:      4,
			CompletedThisWeek: 7,
			TotalPoints:       85,
		},
		Leaderboard: []entity.LeaderboardEntry{},
		Coach: entity.CoachSummary{
			ActiveSessions:   1,
			ResolvedThisWeek: 2,
		},
		Sensors: entity.SensorSummary{
			ActiveCount:     placeholderActiveSensors,
			RecentEvents:    placeholderRecentEvents,
			TriggeredNudges: 2,
		},
		IsFallback:  true,
		GeneratedAt: now,
	}
}
