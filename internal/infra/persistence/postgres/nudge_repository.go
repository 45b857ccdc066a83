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

// nudgeRepository implements the repository.NudgeRepository interface.
type nudgeRepository struct {
	db *gorm.DB
}

// NewNudgeRepository is the constructor for nudgeRepository.
func NewNudgeRepository(db *gorm.DB) repository.NudgeRepository {
	return &nudgeRepository{
		db: db,
	}
}

// CreateNudge persists a new nudge.
func (repo *nudgeRepository) CreateNudge(ctx context.Context, nudge *entity.Nudge) error {
	nudgeM := fromNudgeDomain(nudge)

	if err := repo.db.WithContext(ctx).Create(nudgeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required nudge information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create nudge")
	}

	nudge.CreatedAt = nudgeM.CreatedAt
	nudge.UpdatedAt = nudgeM.UpdatedAt

	return nil
}

// FindNudgeByID retrieves a nudge by its unique ID.
func (repo *nudgeRepository) FindNudgeByID(ctx context.Context, id uuid.UUID) (*entity.Nudge, error) {
	var nudgeM model.NudgeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&nudgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNudgeNotFound
		}

		return nil, errors.Wrap(err, "failed to find nudge by ID")
	}

	return toNudgeDomain(&nudgeM), nil
}

// ListNudgesByHousehold retrieves nudges for a household ordered by creation time, most recent first.
func (repo *nudgeRepository) ListNudgesByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Nudge, error) {
	var nudgeModels []*model.NudgeModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&nudgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nudges by household")
	}

	nudges := make([]*entity.Nudge, 0, len(nudgeModels))
	for _, nudgeM := range nudgeModels {
		nudges = append(nudges, toNudgeDomain(nudgeM))
	}

	return nudges, nil
}

// MarkNudgeRead flags a nudge as read.
func (repo *nudgeRepository) MarkNudgeRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NudgeModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark nudge read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNudgeNotFound
	}

	return nil
}

// DismissNudge flags a nudge as dismissed.
func (repo *nudgeRepository) DismissNudge(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NudgeModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_dismissed": true,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to dismiss nudge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNudgeNotFound
	}

	return nil
}

// DeleteNudge removes a nudge.
func (repo *nudgeRepository) DeleteNudge(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NudgeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete nudge")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNudgeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNudgeDomain(data *model.NudgeModel) *entity.Nudge {
	if data == nil {
		return nil
	}

	return &entity.Nudge{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        entity.NudgeType(data.Type),
		Priority:    entity.NudgePriority(data.Priority),
		TargetUsers: data.TargetUsers,
		IsRead:      data.IsRead,
		IsDismissed: data.IsDismissed,
		ExpiresAt:   data.ExpiresAt,
		ActionURL:   data.ActionURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromNudgeDomain(data *entity.Nudge) *model.NudgeModel {
	if data == nil {
		return nil
	}

	targetUsers := data.TargetUsers
	if targetUsers == nil {
		targetUsers = []uuid.UUID{}
	}

	return &model.NudgeModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        string(data.Type),
		Priority:    string(data.Priority),
		TargetUsers: targetUsers,
		IsRead:      data.IsRead,
		IsDismissed: data.IsDismissed,
		ExpiresAt:   data.ExpiresAt,
		ActionURL:   data.ActionURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
