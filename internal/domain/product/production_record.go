package product

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionRecord records harvested or collected output against a product.
// Records are append-style: once recorded the quantity never changes, and
// "undo" is a one-way soft delete that reverses the inventory delta while
// keeping the row for audit.
type ProductionRecord struct {
	shared.FarmAggregateRoot
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ProductionDate time.Time       `gorm:"type:date;not null;index"`
	IsDeleted      bool            `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
	DeletedBy      *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ProductionRecord) TableName() string {
	return "production_records"
}

// newProductionRecord is invoked by Product.RecordProduction; records are
// never created outside the aggregate.
func newProductionRecord(p *Product, quantity decimal.Decimal, productionDate time.Time, createdBy uuid.UUID) *ProductionRecord {
	return &ProductionRecord{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(p.FarmID, createdBy),
		ProductID:         p.ID,
		Quantity:          quantity,
		ProductionDate:    productionDate,
	}
}

// markDeleted transitions ACTIVE -> DELETED. The transition is one-way and
// requires an actor; a second attempt fails without touching any state.
func (r *ProductionRecord) markDeleted(deletedBy uuid.UUID) error {
	if r.IsDeleted {
		return shared.ErrAlreadyDeleted
	}
	if deletedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_ACTOR", "Deleting user is required")
	}

	now := time.Now()
	r.IsDeleted = true
	r.DeletedAt = &now
	r.DeletedBy = &deletedBy
	r.UpdatedAt = now
	r.IncrementVersion()

	return nil
}
