package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByIDForFarm finds an expense by ID within a farm, with its linked
// transactions loaded so reconciliation can re-derive payment state.
func (r *GormExpenseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*finance.Expense, error) {
	var e finance.Expense
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAllForFarm finds all expenses for a farm
func (r *GormExpenseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := applyFilter(
		r.db.WithContext(ctx).Model(&finance.Expense{}).
			Preload("Transactions").
			Where("farm_id = ?", farmID),
		filter, ExpenseSortFields,
	)
	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save persists the expense together with its transaction links. The join
// rows are replaced with the in-memory set so detached payments are removed
// as well as new ones added; a plain upsert would leave stale links behind.
func (r *GormExpenseRepository) Save(ctx context.Context, e *finance.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Transactions").Save(e).Error; err != nil {
			return err
		}
		return tx.Model(e).Association("Transactions").Replace(e.Transactions)
	})
}

// Delete deletes an expense and its transaction links. The transactions
// themselves stay on the ledger.
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var e finance.Expense
	e.ID = id
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&e)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
