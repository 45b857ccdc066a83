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

type rentService struct {
	rentRepo repository.RentRepository
	logger   *slog.Logger
}

// NewRentService creates a new rent payment service instance
func NewRentService(rentRepo repository.RentRepository, logger *slog.Logger) usecase.RentUsecase {
	return &rentService{
		rentRepo: rentRepo,
		logger:   logger,
	}
}

// ListRentPayments returns a household's rent payments, most recent due date
// first. A failed read is logged and served as an empty list.
func (s *rentService) ListRentPayments(ctx context.Context, householdID uuid.UUID, limit int) []*entity.RentPayment {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	payments, err := s.rentRepo.ListRentPaymentsByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list rent payments, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("rent_payments")

		return []*entity.RentPayment{}
	}

	return payments
}

// CreateRentPayment records a new rent obligation for one roommate.
func (s *rentService) CreateRentPayment(ctx context.Context, input usecase.CreateRentPaymentInput) (*entity.RentPayment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}

	now := time.Now()
	payment := &entity.RentPayment{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		UserID:      input.UserID,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      entity.RentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.rentRepo.CreateRentPayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// MarkRentPaymentPaid transitions a payment to paid.
func (s *rentService) MarkRentPaymentPaid(ctx context.Context, id uuid.UUID, method string) error {
	if err := s.rentRepo.MarkRentPaymentPaid(ctx, id, time.Now(), method); err != nil {
		if errors.Is(err, repository.ErrRentPaymentNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteRentPayment removes a rent payment.
func (s *rentService) DeleteRentPayment(ctx context.Context, id uuid.UUID) error {
	if err := s.rentRepo.DeleteRentPayment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRentPaymentNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
