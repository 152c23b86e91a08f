package persistence

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFeedPurchaseRepository implements FeedPurchaseRepository using GORM
type GormFeedPurchaseRepository struct {
	db *gorm.DB
}

// NewGormFeedPurchaseRepository creates a new GormFeedPurchaseRepository
func NewGormFeedPurchaseRepository(db *gorm.DB) *GormFeedPurchaseRepository {
	return &GormFeedPurchaseRepository{db: db}
}

// FindByIDForFarm finds a purchase by ID within a farm. Soft-deleted rows are
// returned too; callers inspect IsDeleted to reject double reversals.
func (r *GormFeedPurchaseRepository) FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*feed.FeedPurchase, error) {
	var p feed.FeedPurchase
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

// FindByFeed finds all purchases recorded against a feed
func (r *GormFeedPurchaseRepository) FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]feed.FeedPurchase, error) {
	var purchases []feed.FeedPurchase
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.FeedPurchase{}).Where("feed_id = ?", feedID),
		filter, FeedPurchaseSortFields,
	)
	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// FindAllForFarm finds all purchases for a farm
func (r *GormFeedPurchaseRepository) FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]feed.FeedPurchase, error) {
	var purchases []feed.FeedPurchase
	query := applyFilter(
		r.db.WithContext(ctx).Model(&feed.FeedPurchase{}).Where("farm_id = ?", farmID),
		filter, FeedPurchaseSortFields,
	)
	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

// Save creates or updates a purchase
func (r *GormFeedPurchaseRepository) Save(ctx context.Context, p *feed.FeedPurchase) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Ensure GormFeedPurchaseRepository implements FeedPurchaseRepository
var _ feed.FeedPurchaseRepository = (*GormFeedPurchaseRepository)(nil)
