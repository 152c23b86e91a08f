package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByIDForFarm finds a sale by ID within a farm. Soft-deleted rows are
// returned too; callers inspect IsDeleted to reject double reversals.
func (r *GormSaleRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.Sale, error) {
	var s product.Sale
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByProduct finds all sales for a product
func (r *GormSaleRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]product.Sale, error) {
	var sales []product.Sale
	query := applyFilter(
		r.db.WithContext(ctx).Model(&product.Sale{}).Where("product_id = ?", productID),
		filter, SaleSortFields,
	)
	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindAllForFarm finds all sales for a farm
func (r *GormSaleRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.Sale, error) {
	var sales []product.Sale
	query := applyFilter(
		r.db.WithContext(ctx).Model(&product.Sale{}).Where("farm_id = ?", farmID),
		filter, SaleSortFields,
	)
	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByDateRange finds live sales dated within [start, end]
func (r *GormSaleRepository) FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]product.Sale, error) {
	var sales []product.Sale
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND is_deleted = ? AND sale_date BETWEEN ? AND ?", farmID, false, start, end).
		Order("sale_date DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, s *product.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Ensure GormSaleRepository implements SaleRepository
var _ product.SaleRepository = (*GormSaleRepository)(nil)
