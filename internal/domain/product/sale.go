package product

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records product leaving the farm against payment. The total amount is
// a snapshot of quantity times unit price at recording time; later price
// changes never touch it.
type Sale struct {
	shared.FarmAggregateRoot
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerName     string          `gorm:"type:varchar(255)"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	IsPaid        bool            `gorm:"not null;default:false"`
	SaleDate      time.Time       `gorm:"type:date;not null;index"`
	IsDeleted     bool            `gorm:"not null;default:false;index"`
	DeletedAt     *time.Time
	DeletedBy     *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "product_sales"
}

// newSale is invoked by Product.RecordSale; sales are never created outside
// the aggregate.
func newSale(p *Product, buyerName string, quantity, unitPrice decimal.Decimal, paymentMethod string, isPaid bool, saleDate time.Time, createdBy uuid.UUID) *Sale {
	return &Sale{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(p.FarmID, createdBy),
		ProductID:         p.ID,
		BuyerName:         buyerName,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		TotalAmount:       quantity.Mul(unitPrice).Round(4),
		PaymentMethod:     paymentMethod,
		IsPaid:            isPaid,
		SaleDate:          saleDate,
	}
}

// MarkPaid flags the sale as settled
func (s *Sale) MarkPaid() {
	s.IsPaid = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// markDeleted transitions ACTIVE -> DELETED. The transition is one-way and
// requires an actor; a second attempt fails without touching any state.
func (s *Sale) markDeleted(deletedBy uuid.UUID) error {
	if s.IsDeleted {
		return shared.ErrAlreadyDeleted
	}
	if deletedBy == uuid.Nil {
		return shared.NewDomainError("INVALID_ACTOR", "Deleting user is required")
	}

	now := time.Now()
	s.IsDeleted = true
	s.DeletedAt = &now
	s.DeletedBy = &deletedBy
	s.UpdatedAt = now
	s.IncrementVersion()

	return nil
}
