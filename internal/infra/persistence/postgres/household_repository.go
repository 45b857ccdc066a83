package postgres

import (
	"context"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// householdRepository implements the repository.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository is the constructor for householdRepository.
func NewHouseholdRepository(db *gorm.DB) repository.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// CreateHousehold persists a new household.
func (repo *householdRepository) CreateHousehold(ctx context.Context, household *entity.Household) error {
	householdM := fromHouseholdDomain(household)

	if err := repo.db.WithContext(ctx).Create(householdM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrHouseholdCreationFailed.WrapMessage("missing required household information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create household")
	}

	household.CreatedAt = householdM.CreatedAt
	household.UpdatedAt = householdM.UpdatedAt

	return nil
}

// FindHouseholdByID retrieves a household by its unique ID.
func (repo *householdRepository) FindHouseholdByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	var householdM model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&householdM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by ID")
	}

	return toHouseholdDomain(&householdM), nil
}

// UpdateHousehold updates the name, address and member set of a household.
func (repo *householdRepository) UpdateHousehold(ctx context.Context, household *entity.Household) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("id = ?", household.ID).
		Updates(map[string]interface{}{
			"name":       household.Name,
			"address":    household.Address,
			"member_ids": model.UUIDSlice(household.MemberIDs),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHouseholdNotFound
	}

	return nil
}

// DeleteHousehold removes a household.
func (repo *householdRepository) DeleteHousehold(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HouseholdModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHouseholdNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toHouseholdDomain converts a GORM HouseholdModel to a domain Household entity.
func toHouseholdDomain(data *model.HouseholdModel) *entity.Household {
	if data == nil {
		return nil
	}

	return &entity.Household{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		MemberIDs: data.MemberIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromHouseholdDomain converts a domain Household entity to a GORM HouseholdModel.
func fromHouseholdDomain(data *entity.Household) *model.HouseholdModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		MemberIDs: model.UUIDSlice(data.MemberIDs),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
