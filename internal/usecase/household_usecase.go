// Package usecase defines the application service interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHouseholdInput carries the fields needed to create a household.
type CreateHouseholdInput struct {
	Name      string      `json:"name" validate:"required"`
	Address   string      `json:"address"`
	MemberIDs []uuid.UUID `json:"member_ids" validate:"required,min=1"`
}

// HouseholdUsecase defines the interface for household management use cases
type HouseholdUsecase interface {
	// CreateHousehold creates a new household. At least one member is required.
	CreateHousehold(ctx context.Context, input CreateHouseholdInput) (*entity.Household, error)

	// GetHousehold retrieves one household by ID.
	GetHousehold(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// UpdateHousehold replaces the name, address and member set of a household.
	UpdateHousehold(ctx context.Context, id uuid.UUID, input CreateHouseholdInput) (*entity.Household, error)

	// DeleteHousehold removes a household.
	DeleteHousehold(ctx context.Context, id uuid.UUID) error
}
