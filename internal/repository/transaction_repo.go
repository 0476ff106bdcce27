package repository

import (
	"context"
	"time"

	"cargofunds/internal/model"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	Update(ctx context.Context, txn *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*model.Transaction, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	List(ctx context.Context, page pagination.Params) ([]model.Transaction, int64, error)
	ListByRequestID(ctx context.Context, requestID uuid.UUID) ([]model.Transaction, error)
	ListByRequestNumber(ctx context.Context, number string) ([]model.Transaction, error)
	ListByType(ctx context.Context, txnType string) ([]model.Transaction, error)
	ListByStatus(ctx context.Context, status string) ([]model.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from string, updates map[string]interface{}) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(txn).Error
}

func (r *transactionRepository) Update(ctx context.Context, txn *model.Transaction) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(txn).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Transaction{}).Error
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	if err := GetDB(ctx, r.db).Preload("Request").First(&txn, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	if err := forUpdate(GetDB(ctx, r.db)).First(&txn, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) FindByReference(ctx context.Context, reference string) (*model.Transaction, error) {
	var txn model.Transaction
	if err := GetDB(ctx, r.db).Preload("Request").Where("reference_number = ?", reference).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Transaction{}).Where("reference_number = ?", reference).Count(&count).Error
	return count > 0, err
}

func (r *transactionRepository) List(ctx context.Context, page pagination.Params) ([]model.Transaction, int64, error) {
	var txns []model.Transaction
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Request").
		Scopes(page.Scope).
		Order("transaction_date DESC").
		Find(&txns).Error; err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

func (r *transactionRepository) ListByRequestID(ctx context.Context, requestID uuid.UUID) ([]model.Transaction, error) {
	return r.listWhere(ctx, "request_id = ?", requestID)
}

func (r *transactionRepository) ListByRequestNumber(ctx context.Context, number string) ([]model.Transaction, error) {
	requestIDs := GetDB(ctx, r.db).Model(&model.Request{}).Select("id").Where("request_number = ?", number)
	return r.listWhere(ctx, "request_id IN (?)", requestIDs)
}

func (r *transactionRepository) ListByType(ctx context.Context, txnType string) ([]model.Transaction, error) {
	return r.listWhere(ctx, "type = ?", txnType)
}

func (r *transactionRepository) ListByStatus(ctx context.Context, status string) ([]model.Transaction, error) {
	return r.listWhere(ctx, "status = ?", status)
}

// ListByDateRange returns transactions dated in [from, to).
func (r *transactionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	return r.listWhere(ctx, "transaction_date >= ? AND transaction_date < ?", from, to)
}

// TransitionStatus applies updates only while the row still has status from.
// It reports false when another writer moved the row first.
func (r *transactionRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from string, updates map[string]interface{}) (bool, error) {
	result := GetDB(ctx, r.db).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *transactionRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := GetDB(ctx, r.db).Preload("Request").
		Where(query, args...).
		Order("transaction_date DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
