package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/farm"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFarmRepository implements FarmRepository using GORM
type GormFarmRepository struct {
	db *gorm.DB
}

// NewGormFarmRepository creates a new GormFarmRepository
func NewGormFarmRepository(db *gorm.DB) *GormFarmRepository {
	return &GormFarmRepository{db: db}
}

// FindByID finds a farm by its ID
func (r *GormFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	var f farm.Farm
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByOwner finds all farms owned by a user
func (r *GormFarmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]farm.Farm, error) {
	var farms []farm.Farm
	query := applyFilter(
		r.db.WithContext(ctx).Model(&farm.Farm{}).Where("owner_id = ?", ownerID),
		filter, FarmSortFields,
	)
	if err := query.Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

// FindByNameAndOwner finds a farm by name within an owner's farms
func (r *GormFarmRepository) FindByNameAndOwner(ctx context.Context, ownerID uuid.UUID, name string) (*farm.Farm, error) {
	var f farm.Farm
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Save creates or updates a farm
func (r *GormFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete deletes a farm
func (r *GormFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&farm.Farm{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormFarmRepository implements FarmRepository
var _ farm.FarmRepository = (*GormFarmRepository)(nil)
