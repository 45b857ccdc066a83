package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	mockRepo "roomie/internal/mocks/repository"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBillService(t *testing.T) (usecase.BillUsecase, *mockRepo.MockBillRepository) {
	repo := mockRepo.NewMockBillRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewBillService(repo, logger), repo
}

func TestBillService_CreateBill_EmptySplitRejected(t *testing.T) {
	svc, _ := createTestBillService(t)

	_, err := svc.CreateBill(context.Background(), usecase.CreateBillInput{
		HouseholdID: uuid.New(),
		Title:       "Internet",
		Amount:      60,
	})

	assert.ErrorIs(t, err, domainerrors.ErrBillSplitEmpty)
}

func TestBillService_CreateBill_DefaultsCategory(t *testing.T) {
	svc, repo := createTestBillService(t)

	repo.On("CreateBill", mock.Anything, mock.Anything).Return(nil)

	bill, err := svc.CreateBill(context.Background(), usecase.CreateBillInput{
		HouseholdID: uuid.New(),
		Title:       "Window repair",
		Amount:      120,
		DueDate:     time.Now().AddDate(0, 0, 14),
		SplitAmong:  []uuid.UUID{uuid.New(), uuid.New()},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BillCategoryOther, bill.Category)
	assert.Equal(t, entity.BillStatusPending, bill.Status)
}

func TestBillService_ListBills_ReadFailureServesEmpty(t *testing.T) {
	svc, repo := createTestBillService(t)

	householdID := uuid.New()
	repo.On("ListBillsByHousehold", mock.Anything, householdID, 50).
		Return(nil, errors.New("simulated db error"))

	bills := svc.ListBills(context.Background(), householdID, 0)

	require.NotNil(t, bills)
	assert.Empty(t, bills)
}
