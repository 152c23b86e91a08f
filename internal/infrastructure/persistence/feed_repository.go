package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeedRepository implements FeedRepository using GORM
type GormFeedRepository struct {
	db *gorm.DB
}

// NewGormFeedRepository creates a new GormFeedRepository
func NewGormFeedRepository(db *gorm.DB) *GormFeedRepository {
	return &GormFeedRepository{db: db}
}

// FindByID finds a feed by its ID
func (r *GormFeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*feed.Feed, error) {
	var f feed.Feed
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByIDForFarm finds a feed by ID within a farm
func (r *GormFeedRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.Feed, error) {
	var f feed.Feed
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND id = ?", farmID, id).
		First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindAllForFarm finds all feeds for a farm
func (r *GormFeedRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.Feed, error) {
	var feeds []feed.Feed
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.Feed{}).Where("farm_id = ?", farmID),
		filter, FeedSortFields,
	)
	if err := query.Find(&feeds).Error; err != nil {
		return nil, err
	}
	return feeds, nil
}

// Save persists a feed. Inserts go through Create; updates are guarded by an
// optimistic version check so concurrent cost/inventory writers cannot
// silently overwrite each other.
func (r *GormFeedRepository) Save(ctx context.Context, f *feed.Feed) error {
	if f.Version <= 1 {
		return r.db.WithContext(ctx).Create(f).Error
	}

	result := r.db.WithContext(ctx).
		Model(&feed.Feed{}).
		Where("id = ? AND version = ?", f.ID, f.Version-1).
		Updates(map[string]interface{}{
			"name":          f.Name,
			"description":   f.Description,
			"feed_type_id":  f.FeedTypeID,
			"unit":          f.Unit,
			"cost_per_unit": f.CostPerUnit,
			"inventory":     f.Inventory,
			"version":       f.Version,
			"updated_at":    f.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a feed
func (r *GormFeedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feed.Feed{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountReferences counts purchase and consumption rows referencing a feed.
// Soft-deleted rows count too: they stay on the books for audit, so the feed
// they point at must stay as well.
func (r *GormFeedRepository) CountReferences(ctx context.Context, feedID uuid.UUID) (int64, error) {
	var purchases int64
	if err := r.db.WithContext(ctx).
		Model(&feed.FeedPurchase{}).
		Where("feed_id = ?", feedID).
		Count(&purchases).Error; err != nil {
		return 0, err
	}

	var entries int64
	if err := r.db.WithContext(ctx).
		Model(&feed.FeedEntry{}).
		Where("feed_id = ?", feedID).
		Count(&entries).Error; err != nil {
		return 0, err
	}

	return purchases + entries, nil
}

// Ensure GormFeedRepository implements FeedRepository
var _ feed.FeedRepository = (*GormFeedRepository)(nil)
