package feed

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeedEntry records feed consumption by an animal group. The unit cost and
// total cost are snapshots taken at recording time: they keep their value even
// when the feed's running average moves later.
type FeedEntry struct {
	shared.FarmAggregateRoot
	FeedID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AnimalTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Snapshot of Feed.CostPerUnit at entry time
	TotalCost    decimal.Decimal `gorm:"type:decimal(18,4);not null"` // CostPerUnit * Quantity at entry time
	FeedDate     time.Time       `gorm:"type:date;not null;index"`
	IsDeleted    bool            `gorm:"not null;default:false;index"`
	DeletedAt    *time.Time
	DeletedBy    *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (FeedEntry) TableName() string {
	return "feed_entries"
}

// newFeedEntry is invoked by Feed.RecordConsumption; entries are never
// created outside the aggregate.
func newFeedEntry(f *Feed, animalTypeID uuid.UUID, quantity decimal.Decimal, feedDate time.Time, createdBy uuid.UUID) *FeedEntry {
	return &FeedEntry{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(f.FarmID, createdBy),
		FeedID:            f.ID,
		AnimalTypeID:      animalTypeID,
		Quantity:          quantity,
		CostPerUnit:       f.CostPerUnit,
		TotalCost:         f.CostPerUnit.Mul(quantity).Round(4),
		FeedDate:          feedDate,
	}
}

// markDeleted transitions ACTIVE -> DELETED, one-way, actor required
func (e *FeedEntry) markDeleted(deletedBy uuid.UUID) error {
	if e.IsDeleted {
		return shared.ErrAlreadyDeleted
	}
	if deletedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_ACTOR", "Deleting user is required")
	}

	now := time.Now()
	e.IsDeleted = true
	e.DeletedAt = &now
	e.DeletedBy = &deletedBy
	e.UpdatedAt = now
	e.IncrementVersion()

	return nil
}
