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

// choreRepository implements the repository.ChoreRepository interface.
type choreRepository struct {
	db *gorm.DB
}

// NewChoreRepository is the constructor for choreRepository.
func NewChoreRepository(db *gorm.DB) repository.ChoreRepository {
	return &choreRepository{
		db: db,
	}
}

// CreateChore persists a new chore.
func (repo *choreRepository) CreateChore(ctx context.Context, chore *entity.Chore) error {
	choreM := fromChoreDomain(chore)

	if err := repo.db.WithContext(ctx).Create(choreM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required chore information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chore")
	}

	chore.CreatedAt = choreM.CreatedAt
	chore.UpdatedAt = choreM.UpdatedAt

	return nil
}

// FindChoreByID retrieves a chore by its unique ID.
func (repo *choreRepository) FindChoreByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error) {
	var choreM model.ChoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&choreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find chore by ID")
	}

	return toChoreDomain(&choreM), nil
}

// ListChoresByHousehold retrieves chores for a household ordered by creation time, most recent first.
func (repo *choreRepository) ListChoresByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Chore, error) {
	var choreModels []*model.ChoreModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&choreModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chores by household")
	}

	chores := make([]*entity.Chore, 0, len(choreModels))
	for _, choreM := range choreModels {
		chores = append(chores, toChoreDomain(choreM))
	}

	return chores, nil
}

// UpdateChoreStatus sets the status of a chore.
func (repo *choreRepository) UpdateChoreStatus(ctx context.Context, id uuid.UUID, status entity.ChoreStatus, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ChoreModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update chore status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChoreNotFound
	}

	return nil
}

// AssignChore sets or clears the assignee of a chore.
func (repo *choreRepository) AssignChore(ctx context.Context, id uuid.UUID, assignedTo *uuid.UUID, assignedBy uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChoreModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assigned_to": assignedTo,
			"assigned_by": assignedBy,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to assign chore")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChoreNotFound
	}

	return nil
}

// DeleteChore removes a chore.
func (repo *choreRepository) DeleteChore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete chore")
	}

	if result.RowsAffected == 0 {
		return repository.ErrChoreNotFound
	}

	return nil
}

// CreateChoreCompletion records that a user finished a chore.
func (repo *choreRepository) CreateChoreCompletion(ctx context.Context, completion *entity.ChoreCompletion) error {
	completionM := fromChoreCompletionDomain(completion)

	if err := repo.db.WithContext(ctx).Create(completionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid chore or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chore completion")
	}

	return nil
}

// ListChoreCompletionsByHousehold retrieves completions for a household ordered by completion time, most recent first.
func (repo *choreRepository) ListChoreCompletionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.ChoreCompletion, error) {
	var completionModels []*model.ChoreCompletionModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("completed_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&completionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chore completions by household")
	}

	completions := make([]*entity.ChoreCompletion, 0, len(completionModels))
	for _, completionM := range completionModels {
		completions = append(completions, toChoreCompletionDomain(completionM))
	}

	return completions, nil
}

// --- Mapper Functions ---

func toChoreDomain(data *model.ChoreModel) *entity.Chore {
	if data == nil {
		return nil
	}

	var recurrence *entity.RecurrenceRule
	if data.RecurrenceFrequency != "" {
		recurrence = &entity.RecurrenceRule{
			Frequency: data.RecurrenceFrequency,
			Interval:  data.RecurrenceInterval,
		}
	}

	return &entity.Chore{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Description: data.Description,
		AssignedTo:  data.AssignedTo,
		AssignedBy:  data.AssignedBy,
		DueDate:     data.DueDate,
		CompletedAt: data.CompletedAt,
		Status:      entity.ChoreStatus(data.Status),
		Priority:    entity.ChorePriority(data.Priority),
		Category:    entity.ChoreCategory(data.Category),
		Points:      data.Points,
		Recurrence:  recurrence,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromChoreDomain(data *entity.Chore) *model.ChoreModel {
	if data == nil {
		return nil
	}

	choreM := &model.ChoreModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Description: data.Description,
		AssignedTo:  data.AssignedTo,
		AssignedBy:  data.AssignedBy,
		DueDate:     data.DueDate,
		CompletedAt: data.CompletedAt,
		Status:      string(data.Status),
		Priority:    string(data.Priority),
		Category:    string(data.Category),
		Points:      data.Points,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Recurrence != nil {
		choreM.RecurrenceFrequency = data.Recurrence.Frequency
		choreM.RecurrenceInterval = data.Recurrence.Interval
	}

	return choreM
}

func toChoreCompletionDomain(data *model.ChoreCompletionModel) *entity.ChoreCompletion {
	if data == nil {
		return nil
	}

	return &entity.ChoreCompletion{
		ID:           data.ID,
		ChoreID:      data.ChoreID,
		HouseholdID:  data.HouseholdID,
		UserID:       data.UserID,
		PointsEarned: data.PointsEarned,
		VerifiedBy:   data.VerifiedBy,
		CompletedAt:  data.CompletedAt,
	}
}

func fromChoreCompletionDomain(data *entity.ChoreCompletion) *model.ChoreCompletionModel {
	if data == nil {
		return nil
	}

	return &model.ChoreCompletionModel{
		ID:           data.ID,
		ChoreID:      data.ChoreID,
		HouseholdID:  data.HouseholdID,
		UserID:       data.UserID,
		PointsEarned: data.PointsEarned,
		VerifiedBy:   data.VerifiedBy,
		CompletedAt:  data.CompletedAt,
	}
}
