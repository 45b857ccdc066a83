package repository

import (
	"context"
	"errors"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSensorNotFound is returned when a sensor is not found.
var ErrSensorNotFound = errors.New("sensor not found")

// SensorRepository defines the interface for sensor-related database operations.
type SensorRepository interface {
	// CreateSensor persists a new sensor.
	CreateSensor(ctx context.Context, sensor *entity.Sensor) error

	// FindSensorByID retrieves a sensor by its unique ID.
	FindSensorByID(ctx context.Context, id uuid.UUID) (*entity.Sensor, error)

	// ListSensorsByHousehold retrieves sensors for a household ordered by
	// creation time, most recent first.
	ListSensorsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Sensor, error)

	// SetSensorActive flips the active flag of a sensor.
	SetSensorActive(ctx context.Context, id uuid.UUID, active bool) error

	// RecordSensorReading stores the latest reading snapshot for a sensor.
	RecordSensorReading(ctx context.Context, id uuid.UUID, reading entity.SensorReading) error

	// DeleteSensor removes a sensor.
	DeleteSensor(ctx context.Context, id uuid.UUID) error
}
