package entity

import (
	"time"

	"github.com/google/uuid"
)

// RentSummary aggregates the current month's rent position for a household.
type RentSummary struct {
	TotalDue      float64 `json:"total_due"`
	TotalPaid     float64 `json:"total_paid"`
	OverdueAmount float64 `json:"overdue_amount"`
}

// BillSummary aggregates shared bills by status.
type BillSummary struct {
	PendingCount  int         `json:"pending_count"`
	PendingAmount float64     `json:"pending_amount"`
	PaidCount     int         `json:"paid_count"`
	PaidAmount    float64     `json:"paid_amount"`
	OverdueCount  int         `json:"overdue_count"`
	OverdueAmount float64     `json:"overdue_amount"`
	UpcomingDue   []time.Time `json:"upcoming_due"` // Up to three soonest pending due dates, ascending.
}

// ChoreSummary aggregates chore progress and the household point budget.
type ChoreSummary struct {
	PendingCount      int `json:"pending_count"`
	CompletedThisWeek int `json:"completed_this_week"`
	// TotalPoints is the point budget of every chore on the board, completed or
	// not. It shows potential, not points actually earned.
	TotalPoints int `json:"total_points"`
}

// LeaderboardEntry is one user's standing in the chore leaderboard.
type LeaderboardEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	Points      int       `json:"points"`
	Completions int       `json:"completions"`
}

// CoachSummary aggregates conflict-coach activity.
type CoachSummary struct {
	ActiveSessions   int `json:"active_sessions"`
	ResolvedThisWeek int `json:"resolved_this_week"`
}

// SensorSummary aggregates sensor activity for the dashboard.
// ActiveCount and RecentEvents are fixed placeholder values until per-reading
// history is persisted; only TriggeredNudges is computed.
type SensorSummary struct {
	ActiveCount     int `json:"active_count"`
	RecentEvents    int `json:"recent_events"`
	TriggeredNudges int `json:"triggered_nudges"`
}

// DashboardStats is the derived harmony snapshot for one household.
// It is never persisted; every request recomputes it.
type DashboardStats struct {
	HouseholdID uuid.UUID          `json:"household_id"`
	Rent        RentSummary        `json:"rent"`
	Bills       BillSummary        `json:"bills"`
	Chores      ChoreSummary       `json:"chores"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Coach       CoachSummary       `json:"coach"`
	Sensors     SensorSummary      `json:"sensors"`
	// IsFallback marks a snapshot served from the safe-default constant after a
	// data-layer failure, so clients can tell it apart from real data.
	IsFallback  bool      `json:"is_fallback"`
	GeneratedAt time.Time `json:"generated_at"`
}
