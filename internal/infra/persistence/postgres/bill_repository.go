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

// billRepository implements the repository.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository is the constructor for billRepository.
func NewBillRepository(db *gorm.DB) repository.BillRepository {
	return &billRepository{
		db: db,
	}
}

// CreateBill persists a new bill.
func (repo *billRepository) CreateBill(ctx context.Context, bill *entity.Bill) error {
	billM := fromBillDomain(bill)

	if err := repo.db.WithContext(ctx).Create(billM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("invalid household reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntityCreationFailed.WrapMessage("missing required bill information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bill")
	}

	bill.CreatedAt = billM.CreatedAt
	bill.UpdatedAt = billM.UpdatedAt

	return nil
}

// FindBillByID retrieves a bill by its unique ID.
func (repo *billRepository) FindBillByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var billM model.BillModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&billM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillNotFound
		}

		return nil, errors.Wrap(err, "failed to find bill by ID")
	}

	return toBillDomain(&billM), nil
}

// ListBillsByHousehold retrieves bills for a household ordered by due date, most recent first.
func (repo *billRepository) ListBillsByHousehold(ctx context.Context, householdID uuid.UUID, limit int) ([]*entity.Bill, error) {
	var billModels []*model.BillModel

	query := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("due_date DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&billModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bills by household")
	}

	bills := make([]*entity.Bill, 0, len(billModels))
	for _, billM := range billModels {
		bills = append(bills, toBillDomain(billM))
	}

	return bills, nil
}

// MarkBillPaid transitions a bill to paid, recording who settled it and when.
func (repo *billRepository) MarkBillPaid(ctx context.Context, id uuid.UUID, paidBy uuid.UUID, paidDate time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(entity.BillStatusPaid),
			"paid_by":    paidBy,
			"paid_date":  paidDate,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark bill paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillNotFound
	}

	return nil
}

// UpdateBillStatus sets the status of a bill.
func (repo *billRepository) UpdateBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update bill status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillNotFound
	}

	return nil
}

// DeleteBill removes a bill.
func (repo *billRepository) DeleteBill(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BillModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete bill")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBillNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBillDomain(data *model.BillModel) *entity.Bill {
	if data == nil {
		return nil
	}

	return &entity.Bill{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Amount:      data.Amount,
		DueDate:     data.DueDate,
		PaidDate:    data.PaidDate,
		Status:      entity.BillStatus(data.Status),
		Category:    entity.BillCategory(data.Category),
		PaidBy:      data.PaidBy,
		SplitAmong:  data.SplitAmong,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBillDomain(data *entity.Bill) *model.BillModel {
	if data == nil {
		return nil
	}

	return &model.BillModel{
		ID:          data.ID,
		HouseholdID: data.HouseholdID,
		Title:       data.Title,
		Amount:      data.Amount,
		DueDate:     data.DueDate,
		PaidDate:    data.PaidDate,
		Status:      string(data.Status),
		Category:    string(data.Category),
		PaidBy:      data.PaidBy,
		SplitAmong:  model.UUIDSlice(data.SplitAmong),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
