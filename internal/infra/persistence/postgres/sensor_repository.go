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

// sensorRepository implements the repository.SensorRepository interface.
type sensorRepository struct {
	db *gorm.DB
}

// NewSensorRepository is the constructor for sensorRepository.
func NewSensorRepository(db *gorm.DB) repository.SensorRepository {
	return &sensorRepository{
		db: db,
	}
}

// CreateSensor persists a new sensor.
func (repo *sensorRepository) CreateSensor(ctx context.Context, sensor *entity.Sensor) error {
	sensorM := fromSensorDomain(sensor)

	if err := repo.db.WithContext(ctx).Create(sensorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required sensor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sensor")
	}

	sensor.CreatedAt = sensorM.CreatedAt
	sensor.UpdatedAt = sensorM.UpdatedAt

	return nil
}

// FindSensorByID retrieves a sensor by its unique ID.
func (repo *sensorRepository) FindSensorByID(ctx context.Context, id uuid.UUID) (*entity.Sensor, error) {
	var sensorM model.SensorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sensorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSensorNotFound
		}

		return nil, errors.Wrap(err, "failed to find sensor by ID")
	}

	return toSensorDomain(&sensorM), nil
}

// ListSensorsByHousehold retrieves sensors for a household ordered by creation time, most recent first.
func (repo *sensorRepository) ListSensorsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Sensor, error) {
	var sensorModels []*model.SensorModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sensorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sensors by household")
	}

	sensors := make([]*entity.Sensor, 0, len(sensorModels))
	for _, sensorM := range sensorModels {
		sensors = append(sensors, toSensorDomain(sensorM))
	}

	return sensors, nil
}

// SetSensorActive flips the active flag of a sensor.
func (repo *sensorRepository) SetSensorActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set sensor active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// RecordSensorReading stores the latest reading snapshot for a sensor.
func (repo *sensorRepository) RecordSensorReading(ctx context.Context, id uuid.UUID, reading entity.SensorReading) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SensorModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_reading_value": reading.Value,
			"last_reading_at":    reading.RecordedAt,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record sensor reading")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// DeleteSensor removes a sensor.
func (repo *sensorRepository) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SensorModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete sensor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSensorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSensorDomain(data *model.SensorModel) *entity.Sensor {
	if data == nil {
		return nil
	}

	var lastReading *entity.SensorReading
	if data.LastReadingValue != nil && data.LastReadingAt != nil {
		lastReading = &entity.SensorReading{
			Value:      *data.LastReadingValue,
			RecordedAt: *data.LastReadingAt,
		}
	}

	return &entity.Sensor{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Type:        entity.SensorType(data.Type),
		Location:    data.Location,
		IsActive:    data.IsActive,
		LastReading: lastReading,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSensorDomain(data *entity.Sensor) *model.SensorModel {
	if data == nil {
		return nil
	}

	sensorM := &model.SensorModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Type:        string(data.Type),
		Location:    data.Location,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.LastReading != nil {
		value := data.LastReading.Value
		recordedAt := data.LastReading.RecordedAt
		sensorM.LastReadingValue = &value
		sensorM.LastReadingAt = &recordedAt
	}

	return sensorM
}
