package feed

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeedPurchase records a stock purchase against a feed. Purchases are
// append-style: once recorded their quantity/cost never change, and "undo" is
// a one-way soft delete that reverses the inventory delta while keeping the
// row for audit.
type FeedPurchase struct {
	shared.FarmAggregateRoot
	FeedID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Cost         decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Total purchase cost, not per unit
	PurchaseDate time.Time       `gorm:"type:date;not null;index"`
	IsPaid       bool            `gorm:"not null;default:false"`
	IsDeleted    bool            `gorm:"not null;default:false;index"`
	DeletedAt    *time.Time
	DeletedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (FeedPurchase) TableName() string {
	return "feed_purchases"
}

// newFeedPurchase is invoked by Feed.RecordPurchase; purchases are never
// created outside the aggregate.
func newFeedPurchase(f *Feed, quantity, cost decimal.Decimal, purchaseDate time.Time, createdBy uuid.UUID) *FeedPurchase {
	return &FeedPurchase{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(f.FarmID, createdBy),
		FeedID:            f.ID,
		Quantity:          quantity,
		Cost:              cost,
		PurchaseDate:      purchaseDate,
	}
}

// MarkPaid flags the purchase as settled
func (p *FeedPurchase) MarkPaid() {
	p.IsPaid = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// markDeleted transitions ACTIVE -> DELETED. The transition is one-way and
// requires an actor; a second attempt fails without touching any state.
func (p *FeedPurchase) markDeleted(deletedBy uuid.UUID) error {
	if p.IsDeleted {
		return shared.ErrAlreadyDeleted
	}
	if deletedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_ACTOR", "Deleting user is required")
	}

	now := time.Now()
	p.IsDeleted = true
	p.DeletedAt = &now
	p.DeletedBy = &deletedBy
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}

// UnitCost returns the effective per-unit cost of this purchase
func (p *FeedPurchase) UnitCost() decimal.Decimal {
	if p.Quantity.IsZero() {
		return decimal.Zero
	}
	return p.Cost.Div(p.Quantity).Round(4)
}
