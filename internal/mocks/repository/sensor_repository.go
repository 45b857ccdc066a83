package repository

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSensorRepository is a mock for repository.SensorRepository.
type MockSensorRepository struct {
	mock.Mock
}

// NewMockSensorRepository creates a mock wired to the test lifecycle.
func NewMockSensorRepository(t *testing.T) *MockSensorRepository {
	m := &MockSensorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSensorRepository) CreateSensor(ctx context.Context, sensor *entity.Sensor) error {
	args := m.Called(ctx, sensor)

	return args.Error(0)
}

func (m *MockSensorRepository) FindSensorByID(ctx context.Context, id uuid.UUID) (*entity.Sensor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Sensor), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSensorRepository) ListSensorsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Sensor, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Sensor), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSensorRepository) SetSensorActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)

	return args.Error(0)
}

func (m *MockSensorRepository) RecordSensorReading(ctx context.Context, id uuid.UUID, reading entity.SensorReading) error {
	args := m.Called(ctx, id, reading)

	return args.Error(0)
}

func (m *MockSensorRepository) DeleteSensor(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
