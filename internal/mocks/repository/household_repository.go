// Package repository provides testify doubles for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHouseholdRepository is a mock for repository.HouseholdRepository.
type MockHouseholdRepository struct {
	mock.Mock
}

// NewMockHouseholdRepository creates a mock wired to the test lifecycle.
func NewMockHouseholdRepository(t *testing.T) *MockHouseholdRepository {
	m := &MockHouseholdRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockHouseholdRepository) CreateHousehold(ctx context.Context, household *entity.Household) error {
	args := m.Called(ctx, household)

	return args.Error(0)
}

func (m *MockHouseholdRepository) FindHouseholdByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Household), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHouseholdRepository) UpdateHousehold(ctx context.Context, household *entity.Household) error {
	args := m.Called(ctx, household)

	return args.Error(0)
}

func (m *MockHouseholdRepository) DeleteHousehold(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
