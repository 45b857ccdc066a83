package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSensorInput carries the fields needed to register a sensor.
type CreateSensorInput struct {
	HouseholdID uuid.UUID         `json:"household_id" validate:"required"`
	Type        entity.SensorType `json:"type" validate:"required"`
	Location    string            `json:"location" validate:"required"`
}

// SensorUsecase defines the interface for household sensor use cases
type SensorUsecase interface {
	// ListSensors returns a household's sensors, newest first. Read failures are
	// logged and produce an empty list, never an error.
	ListSensors(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Sensor

	// CreateSensor registers a new sensor.
	CreateSensor(ctx context.Context, input CreateSensorInput) (*entity.Sensor, error)

	// RecordSensorReading stores the latest reading snapshot for a sensor.
	RecordSensorReading(ctx context.Context, sensorID uuid.UUID, value string) error

	// SetSensorActive flips the active flag of a sensor.
	SetSensorActive(ctx context.Context, sensorID uuid.UUID, active bool) error

	// DeleteSensor removes a sensor.
	DeleteSensor(ctx context.Context, id uuid.UUID) error
}
