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

type billService struct {
	billRepo repository.BillRepository
	logger   *slog.Logger
}

// NewBillService creates a new shared bill service instance
func NewBillService(billRepo repository.BillRepository, logger *slog.Logger) usecase.BillUsecase {
	return &billService{
		billRepo: billRepo,
		logger:   logger,
	}
}

// ListBills returns a household's bills, most recent due date first. A failed
// read is logged and served as an empty list.
func (s *billService) ListBills(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Bill {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	bills, err := s.billRepo.ListBillsByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list bills, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("bills")

		return []*entity.Bill{}
	}

	return bills
}

// CreateBill records a new shared bill. The split set must be non-empty.
func (s *billService) CreateBill(ctx context.Context, input usecase.CreateBillInput) (*entity.Bill, error) {
	if len(input.SplitAmong) == 0 {
		return nil, domainerrors.ErrBillSplitEmpty
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	category := input.Category
	if category == "" {
		category = entity.BillCategoryOther
	}

	now := time.Now()
	bill := &entity.Bill{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Title:       input.Title,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      entity.BillStatusPending,
		Category:    category,
		SplitAmong:  input.SplitAmong,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.billRepo.CreateBill(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// MarkBillPaid transitions a bill to paid, recording who settled it.
func (s *billService) MarkBillPaid(ctx context.Context, id, paidBy uuid.UUID) error {
	if err := s.billRepo.MarkBillPaid(ctx, id, paidBy, time.Now()); err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteBill removes a bill.
func (s *billService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	if err := s.billRepo.DeleteBill(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
