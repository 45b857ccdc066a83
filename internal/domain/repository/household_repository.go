// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHouseholdNotFound is returned when a household is not found.
var ErrHouseholdNotFound = errors.New("household not found")

// HouseholdRepository defines the interface for household-related database operations.
type HouseholdRepository interface {
	// CreateHousehold persists a new household.
	CreateHousehold(ctx context.Context, household *entity.Household) error

	// FindHouseholdByID retrieves a household by its unique ID.
	FindHouseholdByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// UpdateHousehold updates the name, address and member set of a household.
	UpdateHousehold(ctx context.Context, household *entity.Household) error

	// DeleteHousehold removes a household. Owned entities are not cascaded here;
	// callers decide what to do with them.
	DeleteHousehold(ctx context.Context, id uuid.UUID) error
}
