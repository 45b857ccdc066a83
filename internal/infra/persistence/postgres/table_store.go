package postgres

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableStore writes raw row maps to named tables. The migration and seeding
// tools use it instead of the typed repositories because they work on
// generically mapped documents, not domain entities.
type TableStore struct {
	db *gorm.DB
}

// NewTableStore is the constructor for TableStore.
func NewTableStore(db *gorm.DB) *TableStore {
	return &TableStore{db: db}
}

// Upsert inserts the row or, when the primary key already exists, overwrites
// the existing row's columns. Re-running the same upsert is a no-op.
func (s *TableStore) Upsert(ctx context.Context, table string, id uuid.UUID, row map[string]any) error {
	normalized := normalizeRow(row)
	normalized["id"] = id

	err := s.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(normalized),
		}).
		Create(normalized).Error
	if err != nil {
		return errors.Wrapf(err, "failed to upsert into %s", table)
	}

	return nil
}

// Insert adds one row to the named table.
func (s *TableStore) Insert(ctx context.Context, table string, row map[string]any) error {
	if err := s.db.WithContext(ctx).Table(table).Create(normalizeRow(row)).Error; err != nil {
		return errors.Wrapf(err, "failed to insert into %s", table)
	}

	return nil
}

// DeleteAllExcept removes every row from the named table except the one with
// the given ID.
func (s *TableStore) DeleteAllExcept(ctx context.Context, table string, keep uuid.UUID) error {
	if err := s.db.WithContext(ctx).Table(table).Where("id <> ?", keep).Delete(nil).Error; err != nil {
		return errors.Wrapf(err, "failed to clear %s", table)
	}

	return nil
}

// normalizeRow converts composite values (slices, nested maps) to JSON so the
// postgres driver can bind them to jsonb columns. Scalars, timestamps, UUIDs
// and anything already implementing driver.Valuer pass through unchanged.
func normalizeRow(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for key, value := range row {
		out[key] = normalizeValue(value)
	}

	return out
}

func normalizeValue(value any) any {
	switch value.(type) {
	case nil, string, bool,
		int, int32, int64, float32, float64,
		time.Time, *time.Time,
		uuid.UUID, *uuid.UUID,
		[]byte,
		driver.Valuer:
		return value
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
		data, err := json.Marshal(value)
		if err != nil {
			return value
		}

		return data
	}

	return value
}
