package postgres

import (
	"context"
	"time"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentRepository implements the repository.RentRepository interface.
type rentRepository struct {
	db *gorm.DB
}

// NewRentRepository is the constructor for rentRepository.
func NewRentRepository(db *gorm.DB) repository.RentRepository {
	return &rentRepository{
		db: db,
	}
}

// CreateRentPayment persists a new rent payment.
func (repo *rentRepository) CreateRentPayment(ctx context.Context, payment *entity.RentPayment) error {
	paymentM := fromRentPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required rent payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rent payment")
	}

	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindRentPaymentByID retrieves a rent payment by its unique ID.
func (repo *rentRepository) FindRentPaymentByID(ctx context.Context, id uuid.UUID) (*entity.RentPayment, error) {
	var paymentM model.RentPaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find rent payment by ID")
	}

	return toRentPaymentDomain(&paymentM), nil
}

// ListRentPaymentsByHousehold retrieves payments for a household ordered by due date, most recent first.
func (repo *rentRepository) ListRentPaymentsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.RentPayment, error) {
	var paymentModels []*model.RentPaymentModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("due_date DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rent payments by household")
	}

	payments := make([]*entity.RentPayment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toRentPaymentDomain(paymentM))
	}

	return payments, nil
}

// MarkRentPaymentPaid transitions a payment to paid.
func (repo *rentRepository) MarkRentPaymentPaid(ctx context.Context, id uuid.UUID, paidDate time.Time, method string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentPaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         string(entity.RentStatusPaid),
			"paid_date":      paidDate,
			"payment_method": method,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark rent payment paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentPaymentNotFound
	}

	return nil
}

// UpdateRentPaymentStatus sets the status of a payment.
func (repo *rentRepository) UpdateRentPaymentStatus(ctx context.Context, id uuid.UUID, status entity.RentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentPaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rent payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentPaymentNotFound
	}

	return nil
}

// DeleteRentPayment removes a rent payment.
func (repo *rentRepository) DeleteRentPayment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RentPaymentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rent payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRentPaymentDomain(data *model.RentPaymentModel) *entity.RentPayment {
	if data == nil {
		return nil
	}

	return &entity.RentPayment{
		ID:            data.ID,
		HouseholdID:   data.HouseholdID,
		UserID:        data.UserID,
		Amount:        data.Amount,
		DueDate:       data.DueDate,
		PaidDate:      data.PaidDate,
		Status:        entity.RentStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromRentPaymentDomain(data *entity.RentPayment) *model.RentPaymentModel {
	if data == nil {
		return nil
	}

	return &model.RentPaymentModel{
		ID:            data.ID,
		HouseholdID:   data.HouseholdID,
		UserID:        data.UserID,
		Amount:        data.Amount,
		DueDate:       data.DueDate,
		PaidDate:      data.PaidDate,
		Status:        string(data.Status),
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
