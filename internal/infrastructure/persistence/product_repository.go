package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDForFarm finds a product by ID within a farm
func (r *GormProductRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAllForFarm finds all products for a farm
func (r *GormProductRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]product.Product, error) {
	var products []product.Product
	query := applyFilter(
		r.db.WithContext(ctx).Model(&product.Product{}).Where("farm_id = ?", farmID),
		filter, ProductSortFields,
	)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists a product. Updates carry an optimistic version check so two
// concurrent inventory mutations cannot both win.
func (r *GormProductRepository) Save(ctx context.Context, p *product.Product) error {
	if p.Version <= 1 {
		return r.db.WithContext(ctx).Create(p).Error
	}

	result := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("id = ? AND version = ?", p.ID, p.Version-1).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"unit":        p.Unit,
			"inventory":   p.Inventory,
			"version":     p.Version,
			"updated_at":  p.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&product.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountReferences counts production and sale rows referencing a product.
// Soft-deleted rows count too; they stay on the books for audit.
func (r *GormProductRepository) CountReferences(ctx context.Context, productID uuid.UUID) (int64, error) {
	var records int64
	if err := r.db.WithContext(ctx).
		Model(&product.ProductionRecord{}).
		Where("product_id = ?", productID).
		Count(&records).Error; err != nil {
		return 0, err
	}

	var sales int64
	if err := r.db.WithContext(ctx).
		Model(&product.Sale{}).
		Where("product_id = ?", productID).
		Count(&sales).Error; err != nil {
		return 0, err
	}

	return records + sales, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ product.ProductRepository = (*GormProductRepository)(nil)
