// Package impl contains the concrete application services behind the usecase
// interfaces.
package impl

import (
	"context"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/errors"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type householdService struct {
	householdRepo repository.HouseholdRepository
}

// NewHouseholdService creates a new household service instance
func NewHouseholdService(householdRepo repository.HouseholdRepository) usecase.HouseholdUsecase {
	return &householdService{
		householdRepo: householdRepo,
	}
}

// CreateHousehold creates a new household. At least one member is required.
func (s *householdService) CreateHousehold(ctx context.Context, input usecase.CreateHouseholdInput) (*entity.Household, error) {
	if len(input.MemberIDs) == 0 {
		return nil, domainerrors.ErrHouseholdMembersEmpty
	}

	now := time.Now()
	household := &entity.Household{
		ID:        uuid.New(),
		Name:      input.Name,
		Address:   input.Address,
		MemberIDs: input.MemberIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.householdRepo.CreateHousehold(ctx, household); err != nil {
		return nil, err
	}

	return household, nil
}

// GetHousehold retrieves one household by ID.
func (s *householdService) GetHousehold(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	household, err := s.householdRepo.FindHouseholdByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}

		return nil, err
	}

	return household, nil
}

// UpdateHousehold replaces the name, address and member set of a household.
func (s *householdService) UpdateHousehold(ctx context.Context, id uuid.UUID, input usecase.CreateHouseholdInput) (*entity.Household, error) {
	if len(input.MemberIDs) == 0 {
		return nil, domainerrors.ErrHouseholdMembersEmpty
	}

	household, err := s.GetHousehold(ctx, id)
	if err != nil {
		return nil, err
	}

	household.Name = input.Name
	household.Address = input.Address
	household.MemberIDs = input.MemberIDs
	household.UpdatedAt = time.Now()

	if err := s.householdRepo.UpdateHousehold(ctx, household); err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}

		return nil, err
	}

	return household, nil
}

// DeleteHousehold removes a household.
func (s *householdService) DeleteHousehold(ctx context.Context, id uuid.UUID) error {
	if err := s.householdRepo.DeleteHousehold(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return domainerrors.ErrHouseholdNotFound
		}

		return err
	}

	return nil
}
