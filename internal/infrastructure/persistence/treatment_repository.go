package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/farmstead/backend/internal/domain/health"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTreatmentRepository implements TreatmentRepository using GORM
type GormTreatmentRepository struct {
	db *gorm.DB
}

// NewGormTreatmentRepository creates a new GormTreatmentRepository
func NewGormTreatmentRepository(db *gorm.DB) *GormTreatmentRepository {
	return &GormTreatmentRepository{db: db}
}

// FindByIDForFarm finds a treatment by ID within a farm, with its linked
// payment transactions loaded
func (r *GormTreatmentRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*health.Treatment, error) {
	var t health.Treatment
	if err := r.db.WithContext(ctx).
		Preload("Transactions").
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindAllForFarm finds all treatments for a farm
func (r *GormTreatmentRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]health.Treatment, error) {
	var treatments []health.Treatment
	query := applyFilter(
		r.db.WithContext(ctx).Model(&health.Treatment{}).
			Preload("Transactions").
			Where("farm_id = ?", farmID),
		filter, TreatmentSortFields,
	)
	if err := query.Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

// FindByAnimal finds all treatments for an animal within a farm
func (r *GormTreatmentRepository) FindByAnimal(ctx context.Context, farmID, animalID uuid.UUID, filter shared.Filter) ([]health.Treatment, error) {
	var treatments []health.Treatment
	query := applyFilter(
		r.db.WithContext(ctx).Model(&health.Treatment{}).
			Preload("Transactions").
			Where("farm_id = ? AND animal_id = ?", farmID, animalID),
		filter, TreatmentSortFields,
	)
	if err := query.Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

// FindByDateRange finds treatments dated within [start, end]
func (r *GormTreatmentRepository) FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]health.Treatment, error) {
	var treatments []health.Treatment
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND treatment_date BETWEEN ? AND ?", farmID, start, end).
		Order("treatment_date DESC").
		Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

// Save persists the treatment together with its transaction links, replacing
// the join rows with the in-memory set so detached payments are removed too.
func (r *GormTreatmentRepository) Save(ctx context.Context, t *health.Treatment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Transactions").Save(t).Error; err != nil {
			return err
		}
		return tx.Model(t).Association("Transactions").Replace(t.Transactions)
	})
}

// Delete deletes a treatment and its transaction links
func (r *GormTreatmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var t health.Treatment
	t.ID = id
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&t)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTreatmentRepository implements TreatmentRepository
var _ health.TreatmentRepository = (*GormTreatmentRepository)(nil)
