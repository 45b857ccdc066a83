// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUIDSlice stores a list of UUIDs in a single jsonb column.
type UUIDSlice []uuid.UUID

// Value implements driver.Valuer.
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal uuid slice")
	}

	return data, nil
}

// Scan implements sql.Scanner.
func (s *UUIDSlice) Scan(src any) error {
	if src == nil {
		*s = nil

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		if str, isStr := src.(string); isStr {
			data = []byte(str)
		} else {
			return errors.Errorf("unsupported uuid slice source type %T", src)
		}
	}

	return errors.Wrap(json.Unmarshal(data, s), "failed to unmarshal uuid slice")
}

// StringMap stores a string-to-string map in a single jsonb column.
type StringMap map[string]string

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string map")
	}

	return data, nil
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(src any) error {
	if src == nil {
		*m = nil

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		if str, isStr := src.(string); isStr {
			data = []byte(str)
		} else {
			return errors.Errorf("unsupported string map source type %T", src)
		}
	}

	return errors.Wrap(json.Unmarshal(data, m), "failed to unmarshal string map")
}
