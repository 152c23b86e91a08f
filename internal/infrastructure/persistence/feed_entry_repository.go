package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeedEntryRepository implements FeedEntryRepository using GORM
type GormFeedEntryRepository struct {
	db *gorm.DB
}

// NewGormFeedEntryRepository creates a new GormFeedEntryRepository
func NewGormFeedEntryRepository(db *gorm.DB) *GormFeedEntryRepository {
	return &GormFeedEntryRepository{db: db}
}

// FindByIDForFarm finds a consumption entry by ID within a farm
func (r *GormFeedEntryRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedEntry, error) {
	var e feed.FeedEntry
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

// FindByFeed finds all consumption entries recorded against a feed
func (r *GormFeedEntryRepository) FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]feed.FeedEntry, error) {
	var entries []feed.FeedEntry
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.FeedEntry{}).Where("feed_id = ?", feedID),
		filter, FeedEntrySortFields,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindAllForFarm finds all consumption entries for a farm
func (r *GormFeedEntryRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedEntry, error) {
	var entries []feed.FeedEntry
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.FeedEntry{}).Where("farm_id = ?", farmID),
		filter, FeedEntrySortFields,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a consumption entry
func (r *GormFeedEntryRepository) Save(ctx context.Context, e *feed.FeedEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Ensure GormFeedEntryRepository implements FeedEntryRepository
var _ feed.FeedEntryRepository = (*GormFeedEntryRepository)(nil)
