package migrate

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	inserts []struct {
		table string
		row   map[string]any
	}
	rows       map[string]map[uuid.UUID]map[string]any
	deletes    []string
	insertErrs map[string]error
	deleteErrs map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:       make(map[string]map[uuid.UUID]map[string]any),
		insertErrs: make(map[string]error),
		deleteErrs: make(map[string]error),
	}
}

func (f *fakeStore) Insert(_ context.Context, table string, row map[string]any) error {
	if err := f.insertErrs[table]; err != nil {
		return err
	}
	f.inserts = append(f.inserts, struct {
		table string
		row   map[string]any
	}{table, row})
	if f.rows[table] == nil {
		f.rows[table] = make(map[uuid.UUID]map[string]any)
	}
	if id, ok := row["id"].(uuid.UUID); ok {
		f.rows[table][id] = row
	}

	return nil
}

func (f *fakeStore) DeleteAllExcept(_ context.Context, table string, keep uuid.UUID) error {
	if err := f.deleteErrs[table]; err != nil {
		return err
	}
	f.deletes = append(f.deletes, table)
	for id := range f.rows[table] {
		if id != keep {
			delete(f.rows[table], id)
		}
	}

	return nil
}

func TestSeeder_Upload_CoversEveryTableInDependencyOrder(t *testing.T) {
	store := newFakeStore()
	seeder := NewSeeder(store, testLogger())

	householdID := uuid.New()
	result, err := seeder.Upload(context.Background(), householdID)

	require.NoError(t, err)
	assert.Equal(t, householdID, result.HouseholdID)
	assert.Len(t, result.MemberIDs, 3)

	// Every destination table received at least one row.
	for _, collection := range Collections {
		assert.NotEmpty(t, store.rows[collection.Table], "table %s", collection.Table)
	}

	// The household row lands before anything that references it.
	require.NotEmpty(t, store.inserts)
	assert.Equal(t, "households", store.inserts[0].table)
	assert.Equal(t, householdID, store.inserts[0].row["id"])
}

func TestSeeder_Upload_InsertFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.insertErrs["bills"] = errors.New("insert failed")
	seeder := NewSeeder(store, testLogger())

	result, err := seeder.Upload(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSeeder_Clear_LeavesOnlySentinel(t *testing.T) {
	store := newFakeStore()
	seeder := NewSeeder(store, testLogger())

	// Populate every table, including a sentinel row per table.
	_, err := seeder.Upload(context.Background(), uuid.New())
	require.NoError(t, err)
	for _, collection := range Collections {
		require.NoError(t, store.Insert(context.Background(), collection.Table, map[string]any{"id": SentinelID}))
	}

	require.NoError(t, seeder.Clear(context.Background()))

	for _, collection := range Collections {
		require.Len(t, store.rows[collection.Table], 1, "table %s", collection.Table)
		_, ok := store.rows[collection.Table][SentinelID]
		assert.True(t, ok, "table %s keeps the sentinel", collection.Table)
	}
}

func TestSeeder_Clear_ReverseDependencyOrder(t *testing.T) {
	store := newFakeStore()
	seeder := NewSeeder(store, testLogger())

	require.NoError(t, seeder.Clear(context.Background()))

	require.Len(t, store.deletes, len(Collections))
	assert.Equal(t, "coach_sessions", store.deletes[0])
	assert.Equal(t, "households", store.deletes[len(store.deletes)-1])
}
