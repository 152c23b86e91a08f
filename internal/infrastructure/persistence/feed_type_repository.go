package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeedTypeRepository implements FeedTypeRepository using GORM
type GormFeedTypeRepository struct {
	db *gorm.DB
}

// NewGormFeedTypeRepository creates a new GormFeedTypeRepository
func NewGormFeedTypeRepository(db *gorm.DB) *GormFeedTypeRepository {
	return &GormFeedTypeRepository{db: db}
}

// FindByIDForFarm finds a feed type by ID within a farm
func (r *GormFeedTypeRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedType, error) {
	var t feed.FeedType
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

// FindAllForFarm finds all feed types for a farm
func (r *GormFeedTypeRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedType, error) {
	var types []feed.FeedType
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.FeedType{}).Where("farm_id = ?", farmID),
		filter, FeedTypeSortFields,
	)
	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// FindByNameForFarm finds a feed type by its name within a farm
func (r *GormFeedTypeRepository) FindByNameForFarm(ctx context.Context, farmID uuid.UUID, name string) (*feed.FeedType, error) {
	var t feed.FeedType
	if err := r.db.WithContext(ctx).
		Where("farm_id = ? AND name = ?", farmID, name).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save creates or updates a feed type
func (r *GormFeedTypeRepository) Save(ctx context.Context, t *feed.FeedType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete deletes a feed type
func (r *GormFeedTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feed.FeedType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountFeeds counts the feeds classified under a feed type
func (r *GormFeedTypeRepository) CountFeeds(ctx context.Context, feedTypeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&feed.Feed{}).
		Where("feed_type_id = ?", feedTypeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormFeedTypeRepository implements FeedTypeRepository
var _ feed.FeedTypeRepository = (*GormFeedTypeRepository)(nil)
