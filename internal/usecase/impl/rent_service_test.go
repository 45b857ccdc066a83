package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	mockRepo "roomie/internal/mocks/repository"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRentService(t *testing.T) (usecase.RentUsecase, *mockRepo.MockRentRepository) {
	repo := mockRepo.NewMockRentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRentService(repo, logger), repo
}

func TestRentService_ListRentPayments_Success(t *testing.T) {
	svc, repo := createTestRentService(t)

	householdID := uuid.New()
	expected := []*entity.RentPayment{
		{ID: uuid.New(), HouseholdID: householdID, Amount: 800, Status: entity.RentStatusPending},
	}
	repo.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 50).Return(expected, nil)

	payments := svc.ListRentPayments(context.Background(), householdID, 0)

	assert.Equal(t, expected, payments)
}

func TestRentService_ListRentPayments_ReadFailureServesEmpty(t *testing.T) {
	svc, repo := createTestRentService(t)

	householdID := uuid.New()
	repo.On("ListRentPaymentsByHousehold", mock.Anything, householdID, 10).
		Return(nil, errors.New("simulated db error"))

	payments := svc.ListRentPayments(context.Background(), householdID, 10)

	require.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestRentService_CreateRentPayment_RejectsNonPositiveAmount(t *testing.T) {
	svc, _ := createTestRentService(t)

	_, err := svc.CreateRentPayment(context.Background(), usecase.CreateRentPaymentInput{
		HouseholdID: uuid.New(),
		UserID:      uuid.New(),
		Amount:      0,
		DueDate:     time.Now(),
	})

	require.Error(t, err)
}

func TestRentService_CreateRentPayment_Success(t *testing.T) {
	svc, repo := createTestRentService(t)

	repo.On("CreateRentPayment", mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.CreateRentPayment(context.Background(), usecase.CreateRentPaymentInput{
		HouseholdID: uuid.New(),
		UserID:      uuid.New(),
		Amount:      950,
		DueDate:     time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RentStatusPending, payment.Status)
	assert.InDelta(t, 950.0, payment.Amount, 0.001)
}

func TestRentService_MarkRentPaymentPaid_NotFound(t *testing.T) {
	svc, repo := createTestRentService(t)

	id := uuid.New()
	repo.On("MarkRentPaymentPaid", mock.Anything, id, mock.Anything, "venmo").
		Return(repository.ErrRentPaymentNotFound)

	err := svc.MarkRentPaymentPaid(context.Background(), id, "venmo")

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}
