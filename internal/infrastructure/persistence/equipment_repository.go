package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEquipmentRepository implements EquipmentRepository using GORM
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GormEquipmentRepository
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

// FindByIDForFarm finds equipment by ID within a farm
func (r *GormEquipmentRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*finance.Equipment, error) {
	var e finance.Equipment
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAllForFarm finds all equipment for a farm
func (r *GormEquipmentRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]finance.Equipment, error) {
	var equipment []finance.Equipment
	query := applyFilter(
		r.db.WithContext(ctx).Model(&finance.Equipment{}).Where("farm_id = ?", farmID),
		filter, EquipmentSortFields,
	)
	if err := query.Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

// Save creates or updates equipment
func (r *GormEquipmentRepository) Save(ctx context.Context, e *finance.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete deletes equipment
func (r *GormEquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Equipment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormEquipmentRepository implements EquipmentRepository
var _ finance.EquipmentRepository = (*GormEquipmentRepository)(nil)
