package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID regardless of farm. Callers that
// link payments use this and then verify farm ownership themselves, so a
// cross-farm link fails with a mismatch error instead of a 404.
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Transaction, error) {
	var t finance.Transaction
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByIDForFarm finds a transaction by ID within a farm
func (r *GormTransactionRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*finance.Transaction, error) {
	var t finance.Transaction
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindAllForFarm finds all transactions for a farm
func (r *GormTransactionRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	var txs []finance.Transaction
	query := applyFilter(
		r.db.WithContext(ctx).Model(&finance.Transaction{}).Where("farm_id = ?", farmID),
		filter, TransactionSortFields,
	)
	if err := query.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindByCode finds a transaction by its unique code
func (r *GormTransactionRepository) FindByCode(ctx context.Context, code string) (*finance.Transaction, error) {
	var t finance.Transaction
	if err := r.db.WithContext(ctx).
		Where("transaction_code = ?", code).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, t *finance.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
