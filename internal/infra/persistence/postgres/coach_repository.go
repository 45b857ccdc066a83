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

// coachRepository implements the repository.CoachRepository interface.
type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository is the constructor for coachRepository.
func NewCoachRepository(db *gorm.DB) repository.CoachRepository {
	return &coachRepository{
		db: db,
	}
}

// CreateCoachSession persists a new coach session.
func (repo *coachRepository) CreateCoachSession(ctx context.Context, session *entity.CoachSession) error {
	sessionM := fromCoachSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required session information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coach session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// ListCoachSessionsByHousehold retrieves sessions for a household ordered by start time, most recent first.
func (repo *coachRepository) ListCoachSessionsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.CoachSession, error) {
	var sessionModels []*model.CoachSessionModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("started_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coach sessions by household")
	}

	sessions := make([]*entity.CoachSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toCoachSessionDomain(sessionM))
	}

	return sessions, nil
}

// UpdateCoachSessionStatus sets the status of a session.
func (repo *coachRepository) UpdateCoachSessionStatus(ctx context.Context, id uuid.UUID, status entity.CoachSessionStatus, endedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if endedAt != nil {
		updates["ended_at"] = *endedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CoachSessionModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update coach session status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoachSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCoachSessionDomain(data *model.CoachSessionModel) *entity.CoachSession {
	if data == nil {
		return nil
	}

	return &entity.CoachSession{
		ID:           data.ID,
		HouseholdID:  data.HouseholdID,
		Topic:        data.Topic,
		Participants: data.Participants,
		Status:       entity.CoachSessionStatus(data.Status),
		StartedAt:    data.StartedAt,
		EndedAt:      data.EndedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCoachSessionDomain(data *entity.CoachSession) *model.CoachSessionModel {
	if data == nil {
		return nil
	}

	participants := data.Participants
	if participants == nil {
		participants = []uuid.UUID{}
	}

	return &model.CoachSessionModel{
		ID:           data.ID,
		HouseholdID:  data.HouseholdID,
		Topic:        data.Topic,
		Participants: participants,
		Status:       string(data.Status),
		StartedAt:    data.StartedAt,
		EndedAt:      data.EndedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
