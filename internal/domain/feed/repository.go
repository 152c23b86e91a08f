package feed

import (
	"context"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FeedRepository defines persistence operations for the Feed aggregate.
// Save must use the aggregate Version as an optimistic concurrency token so
// concurrent purchases on the same feed cannot silently lose an update.
type FeedRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Feed, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Feed, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Feed, error)
	Save(ctx context.Context, f *Feed) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, feedID uuid.UUID) (int64, error)
}

// FeedTypeRepository defines persistence operations for feed types
type FeedTypeRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*FeedType, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]FeedType, error)
	FindByNameForFarm(ctx context.Context, farmID uuid.UUID, name string) (*FeedType, error)
	Save(ctx context.Context, t *FeedType) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountFeeds(ctx context.Context, feedTypeID uuid.UUID) (int64, error)
}

// FeedPurchaseRepository defines persistence operations for purchases
type FeedPurchaseRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*FeedPurchase, error)
	FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]FeedPurchase, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]FeedPurchase, error)
	Save(ctx context.Context, p *FeedPurchase) error
}

// FeedEntryRepository defines persistence operations for consumption entries
type FeedEntryRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*FeedEntry, error)
	FindByFeed(ctx context.Context, feedID uuid.UUID, filter shared.Filter) ([]FeedEntry, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]FeedEntry, error)
	Save(ctx context.Context, e *FeedEntry) error
}
