package feed

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Feed represents a feed stock position for a farm. It is the aggregate root
// for the inventory/cost engine: the running stock level and the moving
// weighted-average unit cost live here and are mutated only through purchase
// and consumption recording (and their reversals).
type Feed struct {
	shared.FarmAggregateRoot
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(255)"`
	FeedTypeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Unit        string          `gorm:"type:varchar(50);not null"`
	CostPerUnit decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Moving weighted average cost
	Inventory   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Running stock level
}

// TableName returns the table name for GORM
func (Feed) TableName() string {
	return "feeds"
}

// NewFeed creates a new feed stock position with zero inventory and cost
func NewFeed(farmID, feedTypeID uuid.UUID, name, description, unit string) (*Feed, error) {
	if feedTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FEED_TYPE", "Feed type ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Feed name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Feed unit cannot be empty")
	}

	return &Feed{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		Name:              name,
		Description:       description,
		FeedTypeID:        feedTypeID,
		Unit:              unit,
		CostPerUnit:       decimal.Zero,
		Inventory:         decimal.Zero,
	}, nil
}

// RecordPurchase registers a stock purchase: the inventory grows by the
// purchased quantity and the unit cost is recomputed as a quantity-weighted
// blend of the prior cost and the purchase cost. The recompute happens exactly
// once, when the purchase is first recorded; edits never re-trigger it.
func (f *Feed) RecordPurchase(quantity decimal.Decimal, cost valueobject.Money, purchaseDate time.Time, createdBy uuid.UUID) (*FeedPurchase, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase quantity must be positive")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Purchase cost cannot be negative")
	}

	newQuantity := f.Inventory.Add(quantity)
	// The denominator can only vanish when prior inventory is negative by
	// exactly the purchased quantity (over-drawn stock). Guarded rather than
	// left to decimal division, which panics on zero.
	if newQuantity.IsZero() {
		return nil, shared.NewDomainError("ZERO_QUANTITY", "Inventory and purchase quantity sum to zero; cannot compute unit cost")
	}

	oldCost := f.CostPerUnit
	totalValue := f.CostPerUnit.Mul(f.Inventory).Add(cost.Amount())
	f.CostPerUnit = totalValue.Div(newQuantity).Round(4)
	f.Inventory = newQuantity
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	purchase := newFeedPurchase(f, quantity, cost.Amount(), purchaseDate, createdBy)

	f.AddDomainEvent(NewFeedPurchaseRecordedEvent(f, purchase))
	if !oldCost.Equal(f.CostPerUnit) {
		f.AddDomainEvent(NewFeedCostChangedEvent(f, oldCost, f.CostPerUnit))
	}

	return purchase, nil
}

// RecordConsumption registers a feed entry: the entry snapshots the current
// unit cost so that historical consumption keeps its cost even when the feed's
// running average changes later. Inventory is allowed to go negative; the
// over-draw is kept on the ledger rather than rejected.
func (f *Feed) RecordConsumption(animalTypeID uuid.UUID, quantity decimal.Decimal, feedDate time.Time, createdBy uuid.UUID) (*FeedEntry, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Consumption quantity must be positive")
	}
	if animalTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ANIMAL_TYPE", "Animal type ID cannot be empty")
	}

	entry := newFeedEntry(f, animalTypeID, quantity, feedDate, createdBy)

	f.Inventory = f.Inventory.Sub(quantity)
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFeedConsumptionRecordedEvent(f, entry))

	return entry, nil
}

// ReversePurchase soft-deletes a purchase and applies the inverse inventory
// delta. The weighted-average unit cost is deliberately NOT recomputed: the
// average drifts after a reversal, which is accepted ledger behavior.
func (f *Feed) ReversePurchase(p *FeedPurchase, deletedBy uuid.UUID) error {
	if p.FeedID != f.ID {
		return shared.NewDomainError("FEED_MISMATCH", "Purchase belongs to a different feed")
	}
	if err := p.markDeleted(deletedBy); err != nil {
		return err
	}

	f.Inventory = f.Inventory.Sub(p.Quantity)
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFeedPurchaseReversedEvent(f, p))

	return nil
}

// ReverseEntry soft-deletes a consumption entry and returns its quantity to
// stock. The entry keeps its cost snapshot for audit.
func (f *Feed) ReverseEntry(e *FeedEntry, deletedBy uuid.UUID) error {
	if e.FeedID != f.ID {
		return shared.NewDomainError("FEED_MISMATCH", "Entry belongs to a different feed")
	}
	if err := e.markDeleted(deletedBy); err != nil {
		return err
	}

	f.Inventory = f.Inventory.Add(e.Quantity)
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	f.AddDomainEvent(NewFeedEntryReversedEvent(f, e))

	return nil
}

// Update applies editable descriptive fields. Inventory and cost are never
// written directly.
func (f *Feed) Update(name, description, unit string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Feed name cannot be empty")
	}
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Feed unit cannot be empty")
	}

	f.Name = name
	f.Description = description
	f.Unit = unit
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// StockValue returns the current inventory valued at the running unit cost
func (f *Feed) StockValue() decimal.Decimal {
	return f.Inventory.Mul(f.CostPerUnit)
}

// HasStock returns true if there is positive inventory
func (f *Feed) HasStock() bool {
	return f.Inventory.GreaterThan(decimal.Zero)
}
