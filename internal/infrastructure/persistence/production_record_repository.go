package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductionRecordRepository implements ProductionRecordRepository using GORM
type GormProductionRecordRepository struct {
	db *gorm.DB
}

// NewGormProductionRecordRepository creates a new GormProductionRecordRepository
func NewGormProductionRecordRepository(db *gorm.DB) *GormProductionRecordRepository {
	return &GormProductionRecordRepository{db: db}
}

// FindByIDForFarm finds a production record by ID within a farm. Soft-deleted
// rows are returned too; callers inspect IsDeleted to reject double reversals.
func (r *GormProductionRecordRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.ProductionRecord, error) {
	var rec product.ProductionRecord
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindByProduct finds all production records for a product
func (r *GormProductionRecordRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]product.ProductionRecord, error) {
	var records []product.ProductionRecord
	query := applyFilter(
		r.db.WithContext(ctx).Model(&product.ProductionRecord{}).Where("product_id = ?", productID),
		filter, ProductionRecordSortFields,
	)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindAllForFarm finds all production records for a farm
func (r *GormProductionRecordRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.ProductionRecord, error) {
	var records []product.ProductionRecord
	query := applyFilter(
		r.db.WithContext(ctx).Model(&product.ProductionRecord{}).Where("farm_id = ?", farmID),
		filter, ProductionRecordSortFields,
	)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a production record
func (r *GormProductionRecordRepository) Save(ctx context.Context, rec *product.ProductionRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Ensure GormProductionRecordRepository implements ProductionRecordRepository
var _ product.ProductionRecordRepository = (*GormProductionRecordRepository)(nil)
