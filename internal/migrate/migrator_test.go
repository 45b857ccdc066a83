package migrate

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roomie/internal/infra/firestore"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	docs map[string][]firestore.Document
	errs map[string]error
}

func (f *fakeSource) ReadAll(_ context.Context, collection string) ([]firestore.Document, error) {
	if err := f.errs[collection]; err != nil {
		return nil, err
	}

	return f.docs[collection], nil
}

type recordingWriter struct {
	rows map[string]map[uuid.UUID]map[string]any
	errs map[string]error
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{
		rows: make(map[string]map[uuid.UUID]map[string]any),
		errs: make(map[string]error),
	}
}

func (w *recordingWriter) Upsert(_ context.Context, table string, id uuid.UUID, row map[string]any) error {
	if err := w.errs[table]; err != nil {
		return err
	}
	if w.rows[table] == nil {
		w.rows[table] = make(map[uuid.UUID]map[string]any)
	}
	w.rows[table][id] = row

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestMigrator_Run_MapsAndUpserts(t *testing.T) {
	source := &fakeSource{docs: map[string][]firestore.Document{
		"households": {
			{ID: "legacy-house-1", Data: map[string]any{
				"name":      "Maple St. Crew",
				"memberIds": []any{"user-a", "user-b"},
			}},
		},
		"rentPayments": {
			{ID: "legacy-rent-1", Data: map[string]any{
				"householdId": "legacy-house-1",
				"amount":      800.0,
			}},
		},
	}}
	writer := newRecordingWriter()

	summary := NewMigrator(source, writer, testLogger()).Run(context.Background())

	require.True(t, summary.OK())
	assert.Equal(t, 2, summary.Migrated())

	houseID := DeterministicID("legacy-house-1")
	house := writer.rows["households"][houseID]
	require.NotNil(t, house)
	assert.Equal(t, "Maple St. Crew", house["name"])
	// Member references get the same deterministic mapping as primary keys.
	assert.Equal(t, []any{DeterministicID("user-a"), DeterministicID("user-b")}, house["member_ids"])

	rent := writer.rows["rent_payments"][DeterministicID("legacy-rent-1")]
	require.NotNil(t, rent)
	assert.Equal(t, houseID, rent["household_id"])
	assert.Equal(t, 800.0, rent["amount"])
}

func TestMigrator_Run_MapsUserReferenceColumns(t *testing.T) {
	source := &fakeSource{docs: map[string][]firestore.Document{
		"chores": {
			{ID: "legacy-chore-1", Data: map[string]any{
				"householdId": "legacy-house-1",
				"title":       "Do the dishes",
				"assignedTo":  "user-a",
				"assignedBy":  "user-b",
			}},
		},
		"choreCompletions": {
			{ID: "legacy-comp-1", Data: map[string]any{
				"choreId":    "legacy-chore-1",
				"userId":     "user-a",
				"verifiedBy": "user-b",
			}},
		},
		"bills": {
			{ID: "legacy-bill-1", Data: map[string]any{
				"householdId": "legacy-house-1",
				"paidBy":      "user-a",
			}},
		},
	}}
	writer := newRecordingWriter()

	summary := NewMigrator(source, writer, testLogger()).Run(context.Background())
	require.True(t, summary.OK())

	// User references that do not end in _id get the same deterministic
	// mapping as primary keys, so a uuid column never sees a raw doc ID.
	chore := writer.rows["chores"][DeterministicID("legacy-chore-1")]
	require.NotNil(t, chore)
	assert.Equal(t, DeterministicID("user-a"), chore["assigned_to"])
	assert.Equal(t, DeterministicID("user-b"), chore["assigned_by"])

	completion := writer.rows["chore_completions"][DeterministicID("legacy-comp-1")]
	require.NotNil(t, completion)
	assert.Equal(t, DeterministicID("legacy-chore-1"), completion["chore_id"])
	assert.Equal(t, DeterministicID("user-a"), completion["user_id"])
	assert.Equal(t, DeterministicID("user-b"), completion["verified_by"])

	bill := writer.rows["bills"][DeterministicID("legacy-bill-1")]
	require.NotNil(t, bill)
	assert.Equal(t, DeterministicID("user-a"), bill["paid_by"])
}

func TestMigrator_Run_IsIdempotent(t *testing.T) {
	source := &fakeSource{docs: map[string][]firestore.Document{
		"households": {
			{ID: "legacy-house-1", Data: map[string]any{"name": "Maple St. Crew"}},
		},
	}}
	writer := newRecordingWriter()
	migrator := NewMigrator(source, writer, testLogger())

	first := migrator.Run(context.Background())
	second := migrator.Run(context.Background())

	require.True(t, first.OK())
	require.True(t, second.OK())
	// Re-running lands on the same UUID, so the row is overwritten, not doubled.
	assert.Len(t, writer.rows["households"], 1)
}

func TestMigrator_Run_ContinuesPastFailedCollection(t *testing.T) {
	source := &fakeSource{
		docs: map[string][]firestore.Document{
			"bills": {
				{ID: "legacy-bill-1", Data: map[string]any{"amount": 60.0}},
			},
		},
		errs: map[string]error{
			"households": errors.New("permission denied"),
		},
	}
	writer := newRecordingWriter()

	summary := NewMigrator(source, writer, testLogger()).Run(context.Background())

	assert.False(t, summary.OK())
	assert.Equal(t, 1, summary.Failed())
	assert.Equal(t, 1, summary.Migrated())
	assert.Len(t, summary.Results, len(Collections))
	assert.NotNil(t, writer.rows["bills"])
}

func TestMigrator_Run_WriteFailureStopsCollectionOnly(t *testing.T) {
	source := &fakeSource{docs: map[string][]firestore.Document{
		"households": {
			{ID: "legacy-house-1", Data: map[string]any{"name": "A"}},
		},
		"bills": {
			{ID: "legacy-bill-1", Data: map[string]any{"amount": 10.0}},
		},
	}}
	writer := newRecordingWriter()
	writer.errs["households"] = errors.New("constraint violation")

	summary := NewMigrator(source, writer, testLogger()).Run(context.Background())

	assert.Equal(t, 1, summary.Failed())
	assert.NotNil(t, writer.rows["bills"])
}

func TestDeterministicID(t *testing.T) {
	// Stable across calls.
	assert.Equal(t, DeterministicID("doc-1"), DeterministicID("doc-1"))
	assert.NotEqual(t, DeterministicID("doc-1"), DeterministicID("doc-2"))

	// An ID that already is a UUID passes through unchanged.
	existing := uuid.New()
	assert.Equal(t, existing, DeterministicID(existing.String()))
}
