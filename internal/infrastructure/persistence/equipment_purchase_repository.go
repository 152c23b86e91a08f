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

// GormEquipmentPurchaseRepository implements EquipmentPurchaseRepository using GORM
type GormEquipmentPurchaseRepository struct {
	db *gorm.DB
}

// NewGormEquipmentPurchaseRepository creates a new GormEquipmentPurchaseRepository
func NewGormEquipmentPurchaseRepository(db *gorm.DB) *GormEquipmentPurchaseRepository {
	return &GormEquipmentPurchaseRepository{db: db}
}

// FindByIDForFarm finds an equipment purchase by ID within a farm, with its
// linked transactions loaded
func (r *GormEquipmentPurchaseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*finance.EquipmentPurchase, error) {
	var p finance.EquipmentPurchase
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAllForFarm finds all equipment purchases for a farm
func (r *GormEquipmentPurchaseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]finance.EquipmentPurchase, error) {
	var purchases []finance.EquipmentPurchase
	query := applyFilter(
		r.db.WithContext(ctx).Model(&finance.EquipmentPurchase{}).
			Preload("Transactions").
			Where("farm_id = ?", farmID),
		filter, EquipmentPurchaseSortFields,
	)
	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Save persists the purchase together with its transaction links, replacing
// the join rows with the in-memory set so detached payments are removed too.
func (r *GormEquipmentPurchaseRepository) Save(ctx context.Context, p *finance.EquipmentPurchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Transactions").Save(p).Error; err != nil {
			return err
		}
		return tx.Model(p).Association("Transactions").Replace(p.Transactions)
	})
}

// Delete deletes an equipment purchase and its transaction links
func (r *GormEquipmentPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var p finance.EquipmentPurchase
	p.ID = id
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormEquipmentPurchaseRepository implements EquipmentPurchaseRepository
var _ finance.EquipmentPurchaseRepository = (*GormEquipmentPurchaseRepository)(nil)
