package feed

import (
	"context"
	"errors"
	"time"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// FeedService handles feed stock, purchase and consumption operations
type FeedService struct {
	scope          TransactionScope
	feedRepo       feed.FeedRepository
	typeRepo       feed.FeedTypeRepository
	purchaseRepo   feed.FeedPurchaseRepository
	entryRepo      feed.FeedEntryRepository
	eventPublisher shared.EventPublisher
}

// NewFeedService creates a new FeedService
func NewFeedService(
	scope TransactionScope,
	feedRepo feed.FeedRepository,
	typeRepo feed.FeedTypeRepository,
	purchaseRepo feed.FeedPurchaseRepository,
	entryRepo feed.FeedEntryRepository,
) *FeedService {
	return &FeedService{
		scope:        scope,
		feedRepo:     feedRepo,
		typeRepo:     typeRepo,
		purchaseRepo: purchaseRepo,
		entryRepo:    entryRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *FeedService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishDomainEvents publishes the aggregate's events after a successful commit
func (s *FeedService) publishDomainEvents(ctx context.Context, f *feed.Feed) {
	if s.eventPublisher == nil {
		return
	}
	events := f.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	f.ClearDomainEvents()
}

// CreateFeed creates a new feed stock position
func (s *FeedService) CreateFeed(ctx context.Context, farmID uuid.UUID, req CreateFeedRequest) (*FeedResponse, error) {
	if _, err := s.typeRepo.FindByIDForFarm(ctx, farmID, req.FeedTypeID); err != nil {
		return nil, err
	}

	f, err := feed.NewFeed(farmID, req.FeedTypeID, req.Name, req.Description, req.Unit)
	if err != nil {
		return nil, err
	}

	if err := s.feedRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	response := ToFeedResponse(f)
	return &response, nil
}

// GetFeed retrieves a feed by ID within a farm
func (s *FeedService) GetFeed(ctx context.Context, farmID, feedID uuid.UUID) (*FeedResponse, error) {
	f, err := s.feedRepo.FindByIDForFarm(ctx, farmID, feedID)
	if err != nil {
		return nil, err
	}
	response := ToFeedResponse(f)
	return &response, nil
}

// ListFeeds retrieves feeds for a farm with filtering and pagination
func (s *FeedService) ListFeeds(ctx context.Context, farmID uuid.UUID, filter FeedListFilter) ([]FeedResponse, error) {
	feeds, err := s.feedRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToFeedResponses(feeds), nil
}

// UpdateFeed updates a feed's descriptive fields. Inventory and cost are never
// written through this path.
func (s *FeedService) UpdateFeed(ctx context.Context, farmID, feedID uuid.UUID, req UpdateFeedRequest) (*FeedResponse, error) {
	f, err := s.feedRepo.FindByIDForFarm(ctx, farmID, feedID)
	if err != nil {
		return nil, err
	}

	if err := f.Update(req.Name, req.Description, req.Unit); err != nil {
		return nil, err
	}

	if err := s.feedRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	response := ToFeedResponse(f)
	return &response, nil
}

// DeleteFeed removes a feed. Feeds with recorded purchases or entries are
// protected; the history must stay reconstructible.
func (s *FeedService) DeleteFeed(ctx context.Context, farmID, feedID uuid.UUID) error {
	f, err := s.feedRepo.FindByIDForFarm(ctx, farmID, feedID)
	if err != nil {
		return err
	}

	count, err := s.feedRepo.CountReferences(ctx, f.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrInUse
	}

	return s.feedRepo.Delete(ctx, f.ID)
}

// CreateFeedType creates a feed type; names are unique per farm
func (s *FeedService) CreateFeedType(ctx context.Context, farmID, createdBy uuid.UUID, req CreateFeedTypeRequest) (*FeedTypeResponse, error) {
	existing, err := s.typeRepo.FindByNameForFarm(ctx, farmID, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	t, err := feed.NewFeedType(farmID, createdBy, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.typeRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToFeedTypeResponse(t)
	return &response, nil
}

// ListFeedTypes retrieves feed types for a farm
func (s *FeedService) ListFeedTypes(ctx context.Context, farmID uuid.UUID, filter FeedListFilter) ([]FeedTypeResponse, error) {
	types, err := s.typeRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToFeedTypeResponses(types), nil
}

// UpdateFeedType renames a feed type
func (s *FeedService) UpdateFeedType(ctx context.Context, farmID, typeID uuid.UUID, req UpdateFeedTypeRequest) (*FeedTypeResponse, error) {
	t, err := s.typeRepo.FindByIDForFarm(ctx, farmID, typeID)
	if err != nil {
		return nil, err
	}

	if err := t.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToFeedTypeResponse(t)
	return &response, nil
}

// DeleteFeedType removes a feed type unless feeds still reference it
func (s *FeedService) DeleteFeedType(ctx context.Context, farmID, typeID uuid.UUID) error {
	t, err := s.typeRepo.FindByIDForFarm(ctx, farmID, typeID)
	if err != nil {
		return err
	}

	count, err := s.typeRepo.CountFeeds(ctx, t.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrInUse
	}

	return s.typeRepo.Delete(ctx, t.ID)
}

// RecordPurchase records a feed purchase: the stock grows and the weighted
// average cost is recomputed, atomically with the purchase row.
func (s *FeedService) RecordPurchase(ctx context.Context, farmID, userID uuid.UUID, req RecordPurchaseRequest) (*FeedPurchaseResponse, error) {
	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	var f *feed.Feed
	var purchase *feed.FeedPurchase

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		f, err = repos.FeedRepo().FindByIDForFarm(ctx, farmID, req.FeedID)
		if err != nil {
			return err
		}

		purchase, err = f.RecordPurchase(req.Quantity, valueobject.NewMoneyUSD(req.Cost), purchaseDate, userID)
		if err != nil {
			return err
		}
		if req.IsPaid {
			purchase.MarkPaid()
		}

		if err := repos.FeedRepo().Save(ctx, f); err != nil {
			return err
		}
		return repos.PurchaseRepo().Save(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, f)

	response := ToFeedPurchaseResponse(purchase)
	return &response, nil
}

// DeletePurchase reverses a purchase: the record is soft-deleted and the
// quantity leaves stock. The weighted average cost is not recomputed.
func (s *FeedService) DeletePurchase(ctx context.Context, farmID, purchaseID, userID uuid.UUID) error {
	var f *feed.Feed

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.PurchaseRepo().FindByIDForFarm(ctx, farmID, purchaseID)
		if err != nil {
			return err
		}

		f, err = repos.FeedRepo().FindByIDForFarm(ctx, farmID, purchase.FeedID)
		if err != nil {
			return err
		}

		if err := f.ReversePurchase(purchase, userID); err != nil {
			return err
		}

		if err := repos.FeedRepo().Save(ctx, f); err != nil {
			return err
		}
		return repos.PurchaseRepo().Save(ctx, purchase)
	})
	if err != nil {
		return err
	}

	s.publishDomainEvents(ctx, f)
	return nil
}

// ListPurchases retrieves purchases for a farm
func (s *FeedService) ListPurchases(ctx context.Context, farmID uuid.UUID, filter FeedListFilter) ([]FeedPurchaseResponse, error) {
	purchases, err := s.purchaseRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToFeedPurchaseResponses(purchases), nil
}

// RecordEntry records feed consumption: the entry snapshots the current unit
// cost and the stock shrinks, atomically with the entry row.
func (s *FeedService) RecordEntry(ctx context.Context, farmID, userID uuid.UUID, req RecordEntryRequest) (*FeedEntryResponse, error) {
	feedDate := time.Now()
	if req.FeedDate != nil {
		feedDate = *req.FeedDate
	}

	var f *feed.Feed
	var entry *feed.FeedEntry

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		f, err = repos.FeedRepo().FindByIDForFarm(ctx, farmID, req.FeedID)
		if err != nil {
			return err
		}

		entry, err = f.RecordConsumption(req.AnimalTypeID, req.Quantity, feedDate, userID)
		if err != nil {
			return err
		}

		if err := repos.FeedRepo().Save(ctx, f); err != nil {
			return err
		}
		return repos.EntryRepo().Save(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, f)

	response := ToFeedEntryResponse(entry)
	return &response, nil
}

// DeleteEntry reverses a consumption entry: the record is soft-deleted and the
// quantity returns to stock
func (s *FeedService) DeleteEntry(ctx context.Context, farmID, entryID, userID uuid.UUID) error {
	var f *feed.Feed

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.EntryRepo().FindByIDForFarm(ctx, farmID, entryID)
		if err != nil {
			return err
		}

		f, err = repos.FeedRepo().FindByIDForFarm(ctx, farmID, entry.FeedID)
		if err != nil {
			return err
		}

		if err := f.ReverseEntry(entry, userID); err != nil {
			return err
		}

		if err := repos.FeedRepo().Save(ctx, f); err != nil {
			return err
		}
		return repos.EntryRepo().Save(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.publishDomainEvents(ctx, f)
	return nil
}

// ListEntries retrieves consumption entries for a farm
func (s *FeedService) ListEntries(ctx context.Context, farmID uuid.UUID, filter FeedListFilter) ([]FeedEntryResponse, error) {
	entries, err := s.entryRepo.FindAllForFarm(ctx, farmID, buildFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToFeedEntryResponses(entries), nil
}

// buildFilter maps the API filter onto the domain filter with defaults applied
func buildFilter(filter FeedListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.FeedTypeID != nil {
		domainFilter.Filters["feed_type_id"] = *filter.FeedTypeID
	}
	return domainFilter
}
