package repository

import (
	"context"
	"testing"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRentRepository is a mock for repository.RentRepository.
type MockRentRepository struct {
	mock.Mock
}

// NewMockRentRepository creates a mock wired to the test lifecycle.
func NewMockRentRepository(t *testing.T) *MockRentRepository {
	m := &MockRentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRentRepository) CreateRentPayment(ctx context.Context, payment *entity.RentPayment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *MockRentRepository) FindRentPaymentByID(ctx context.Context, id uuid.UUID) (*entity.RentPayment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.RentPayment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRentRepository) ListRentPaymentsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.RentPayment, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.RentPayment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRentRepository) MarkRentPaymentPaid(ctx context.Context, id uuid.UUID, paidDate time.Time, method string) error {
	args := m.Called(ctx, id, paidDate, method)

	return args.Error(0)
}

func (m *MockRentRepository) UpdateRentPaymentStatus(ctx context.Context, id uuid.UUID, status entity.RentStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *MockRentRepository) DeleteRentPayment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
