package feed

import (
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for the feed aggregate
const (
	EventTypeFeedPurchaseRecorded    = "feed.purchase_recorded"
	EventTypeFeedConsumptionRecorded = "feed.consumption_recorded"
	EventTypeFeedPurchaseReversed    = "feed.purchase_reversed"
	EventTypeFeedEntryReversed       = "feed.entry_reversed"
	EventTypeFeedCostChanged         = "feed.cost_changed"
)

// FeedPurchaseRecordedEvent is emitted when a purchase increases stock
type FeedPurchaseRecordedEvent struct {
	shared.BaseDomainEvent
	PurchaseID   uuid.UUID       `json:"purchase_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewFeedPurchaseRecordedEvent creates a new FeedPurchaseRecordedEvent
func NewFeedPurchaseRecordedEvent(f *Feed, p *FeedPurchase) *FeedPurchaseRecordedEvent {
	return &FeedPurchaseRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedPurchaseRecorded, "Feed", f.ID, f.FarmID),
		PurchaseID:      p.ID,
		Quantity:        p.Quantity,
		Cost:            p.Cost,
		NewInventory:    f.Inventory,
	}
}

// FeedConsumptionRecordedEvent is emitted when an entry decreases stock
type FeedConsumptionRecordedEvent struct {
	shared.BaseDomainEvent
	EntryID      uuid.UUID       `json:"entry_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewFeedConsumptionRecordedEvent creates a new FeedConsumptionRecordedEvent
func NewFeedConsumptionRecordedEvent(f *Feed, e *FeedEntry) *FeedConsumptionRecordedEvent {
	return &FeedConsumptionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedConsumptionRecorded, "Feed", f.ID, f.FarmID),
		EntryID:         e.ID,
		Quantity:        e.Quantity,
		TotalCost:       e.TotalCost,
		NewInventory:    f.Inventory,
	}
}

// FeedPurchaseReversedEvent is emitted when a purchase is soft-deleted
type FeedPurchaseReversedEvent struct {
	shared.BaseDomainEvent
	PurchaseID   uuid.UUID       `json:"purchase_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewFeedPurchaseReversedEvent creates a new FeedPurchaseReversedEvent
func NewFeedPurchaseReversedEvent(f *Feed, p *FeedPurchase) *FeedPurchaseReversedEvent {
	return &FeedPurchaseReversedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedPurchaseReversed, "Feed", f.ID, f.FarmID),
		PurchaseID:      p.ID,
		Quantity:        p.Quantity,
		NewInventory:    f.Inventory,
	}
}

// FeedEntryReversedEvent is emitted when a consumption entry is soft-deleted
type FeedEntryReversedEvent struct {
	shared.BaseDomainEvent
	EntryID      uuid.UUID       `json:"entry_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewFeedEntryReversedEvent creates a new FeedEntryReversedEvent
func NewFeedEntryReversedEvent(f *Feed, e *FeedEntry) *FeedEntryReversedEvent {
	return &FeedEntryReversedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedEntryReversed, "Feed", f.ID, f.FarmID),
		EntryID:         e.ID,
		Quantity:        e.Quantity,
		NewInventory:    f.Inventory,
	}
}

// FeedCostChangedEvent is emitted when the weighted-average cost moves
type FeedCostChangedEvent struct {
	shared.BaseDomainEvent
	OldCostPerUnit decimal.Decimal `json:"old_cost_per_unit"`
	NewCostPerUnit decimal.Decimal `json:"new_cost_per_unit"`
}

// NewFeedCostChangedEvent creates a new FeedCostChangedEvent
func NewFeedCostChangedEvent(f *Feed, oldCost, newCost decimal.Decimal) *FeedCostChangedEvent {
	return &FeedCostChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFeedCostChanged, "Feed", f.ID, f.FarmID),
		OldCostPerUnit:  oldCost,
		NewCostPerUnit:  newCost,
	}
}
