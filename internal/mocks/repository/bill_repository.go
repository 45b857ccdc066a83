package repository

import (
	"context"
	"testing"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBillRepository is a mock for repository.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

// NewMockBillRepository creates a mock wired to the test lifecycle.
func NewMockBillRepository(t *testing.T) *MockBillRepository {
	m := &MockBillRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *entity.Bill) error {
	args := m.Called(ctx, bill)

	return args.Error(0)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Bill), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBillRepository) ListBillsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Bill, error) {
	args := m.Called(ctx, householdID, limit)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Bill), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBillRepository) MarkBillPaid(ctx context.Context, id uuid.UUID, paidBy uuid.UUID, paidDate time.Time) error {
	args := m.Called(ctx, id, paidBy, paidDate)

	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
