package impl

import (
	"context"
	"log/slog"
	"time"

	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/errors"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type sensorService struct {
	sensorRepo repository.SensorRepository
	logger     *slog.Logger
}

// NewSensorService creates a new sensor service instance
func NewSensorService(sensorRepo repository.SensorRepository, logger *slog.Logger) usecase.SensorUsecase {
	return &sensorService{
		sensorRepo: sensorRepo,
		logger:     logger,
	}
}

// ListSensors returns a household's sensors, newest first. A failed read is
// logged and served as an empty list.
func (s *sensorService) ListSensors(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Sensor {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	sensors, err := s.sensorRepo.ListSensorsByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list sensors, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("sensors")

		return []*entity.Sensor{}
	}

	return sensors
}

// CreateSensor registers a new sensor.
func (s *sensorService) CreateSensor(ctx context.Context, input usecase.CreateSensorInput) (*entity.Sensor, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sensor type")
	}

	now := time.Now()
	sensor := &entity.Sensor{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Type:        input.Type,
		Location:    input.Location,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sensorRepo.CreateSensor(ctx, sensor); err != nil {
		return nil, err
	}

	return sensor, nil
}

// RecordSensorReading stores the latest reading snapshot for a sensor.
func (s *sensorService) RecordSensorReading(ctx context.Context, sensorID uuid.UUID, value string) error {
	reading := entity.SensorReading{
		Value:      value,
		RecordedAt: time.Now(),
	}

	if err := s.sensorRepo.RecordSensorReading(ctx, sensorID, reading); err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// SetSensorActive flips the active flag of a sensor.
func (s *sensorService) SetSensorActive(ctx context.Context, sensorID uuid.UUID, active bool) error {
	if err := s.sensorRepo.SetSensorActive(ctx, sensorID, active); err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteSensor removes a sensor.
func (s *sensorService) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	if err := s.sensorRepo.DeleteSensor(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSensorNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
