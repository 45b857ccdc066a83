package migrate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SentinelID is the reserved row every table keeps through a clear. Tooling
// and smoke tests rely on it always existing.
var SentinelID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Store writes raw rows to destination tables. It is the narrow surface the
// seeder needs, so tests can swap in an in-memory fake.
type Store interface {
	// Insert adds one row to the named table.
	Insert(ctx context.Context, table string, row map[string]any) error

	// DeleteAllExcept removes every row from the named table except the one
	// with the given ID.
	DeleteAllExcept(ctx context.Context, table string, keep uuid.UUID) error
}

// SeedResult records the IDs generated while uploading the sample dataset,
// keyed by table, so callers can reference or clean them up later.
type SeedResult struct {
	HouseholdID uuid.UUID
	MemberIDs   []uuid.UUID
	IDs         map[string][]uuid.UUID
}

// Seeder uploads a fixed sample dataset and clears tables back down to the
// sentinel row.
type Seeder struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewSeeder is the constructor for Seeder.
func NewSeeder(store Store, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Upload inserts the sample dataset for the given household in dependency
// order: the household row first, then every row that references it.
func (s *Seeder) Upload(ctx context.Context, householdID uuid.UUID) (*SeedResult, error) {
	result := &SeedResult{
		HouseholdID: householdID,
		MemberIDs:   []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
		IDs:         make(map[string][]uuid.UUID),
	}

	for _, tableRows := range sampleDataset(householdID, result.MemberIDs, s.now()) {
		for _, row := range tableRows.Rows {
			if err := s.store.Insert(ctx, tableRows.Table, row); err != nil {
				return nil, err
			}
			if id, ok := row["id"].(uuid.UUID); ok {
				result.IDs[tableRows.Table] = append(result.IDs[tableRows.Table], id)
			}
		}
		s.logger.Info("table seeded",
			slog.String("table", tableRows.Table),
			slog.Int("rows", len(tableRows.Rows)),
		)
	}

	return result, nil
}

// Clear empties every table except its sentinel row, walking the tables in
// reverse dependency order so references disappear before their targets.
func (s *Seeder) Clear(ctx context.Context) error {
	for i := len(Collections) - 1; i >= 0; i-- {
		table := Collections[i].Table
		if err := s.store.DeleteAllExcept(ctx, table, SentinelID); err != nil {
			return err
		}
		s.logger.Info("table cleared", slog.String("table", table))
	}

	return nil
}

// tableRows groups the sample rows destined for one table.
type tableRows struct {
	Table string
	Rows  []map[string]any
}

// sampleDataset builds the fixed development dataset. Row order follows
// Collections so foreign references always point at already-inserted rows.
func sampleDataset(householdID uuid.UUID, members []uuid.UUID, now time.Time) []tableRows {
	alex, blair, casey := members[0], members[1], members[2]
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastWeek := now.AddDate(0, 0, -5)

	choreDishes := uuid.New()
	choreTrash := uuid.New()

	return []tableRows{
		{Table: "households", Rows: []map[string]any{{
			"id":         householdID,
			"name":       "Maple St. Crew",
			"address":    "42 Maple Street",
			"member_ids": members,
		}}},
		{Table: "rent_payments", Rows: []map[string]any{
			{
				"id": uuid.New(), "household_id": householdID, "user_id": alex,
				"amount": 650.0, "due_date": monthStart, "status": "paid",
				"paid_date": monthStart.AddDate(0, 0, 1), "payment_method": "bank_transfer",
			},
			{
				"id": uuid.New(), "household_id": householdID, "user_id": blair,
				"amount": 650.0, "due_date": monthStart, "status": "pending",
			},
			{
				"id": uuid.New(), "household_id": householdID, "user_id": casey,
				"amount": 650.0, "due_date": monthStart.AddDate(0, -1, 0), "status": "overdue",
			},
		}},
		{Table: "bills", Rows: []map[string]any{
			{
				"id": uuid.New(), "household_id": householdID, "title": "Electricity",
				"amount": 92.40, "due_date": now.AddDate(0, 0, 7), "status": "pending",
				"category": "utilities", "split_among": members,
			},
			{
				"id": uuid.New(), "household_id": householdID, "title": "Internet",
				"amount": 59.99, "due_date": lastWeek, "status": "paid",
				"paid_date": lastWeek, "paid_by": blair,
				"category": "internet", "split_among": members,
			},
		}},
		{Table: "chores", Rows: []map[string]any{
			{
				"id": choreDishes, "household_id": householdID, "title": "Do the dishes",
				"status": "pending", "priority": "high", "category": "kitchen",
				"points": 5, "assigned_to": alex, "assigned_by": blair,
				"due_date": now.AddDate(0, 0, 1),
			},
			{
				"id": choreTrash, "household_id": householdID, "title": "Take out trash",
				"status": "completed", "priority": "medium", "category": "trash",
				"points": 3, "assigned_to": casey, "completed_at": lastWeek,
			},
		}},
		{Table: "chore_completions", Rows: []map[string]any{{
			"id": uuid.New(), "chore_id": choreTrash, "household_id": householdID,
			"user_id": casey, "points_earned": 3, "completed_at": lastWeek,
		}}},
		{Table: "sensors", Rows: []map[string]any{{
			"id": uuid.New(), "household_id": householdID, "type": "trash",
			"location": "kitchen", "is_active": true,
		}}},
		{Table: "nudges", Rows: []map[string]any{{
			"id": uuid.New(), "household_id": householdID,
			"title": "Trash day tomorrow", "message": "Bins go out tonight.",
			"type": "chore_reminder", "priority": "medium",
			"target_users": []uuid.UUID{casey},
		}}},
		{Table: "chat_messages", Rows: []map[string]any{{
			"id": uuid.New(), "household_id": householdID, "user_id": alex,
			"content": "Who finished the milk?", "created_at": lastWeek,
		}}},
		{Table: "notifications", Rows: []map[string]any{{
			"id": uuid.New(), "household_id": householdID, "user_id": alex,
			"type": "chore_assigned", "title": "New chore",
			"message": "You were assigned: Do the dishes", "created_at": now,
		}}},
		{Table: "coach_sessions", Rows: []map[string]any{{
			"id": uuid.New(), "household_id": householdID, "topic": "Dish rotation",
			"participants": []uuid.UUID{alex, blair}, "status": "active",
			"started_at": lastWeek,
		}}},
	}
}
