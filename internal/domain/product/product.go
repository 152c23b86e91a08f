package product

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a farm output (milk, eggs, honey) tracked by quantity.
// It is the aggregate root for production and sales: the running inventory is
// mutated only through production/sale recording and their reversals. No unit
// cost is carried; product value enters the books on the sale side.
type Product struct {
	shared.FarmAggregateRoot
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Unit        string          `gorm:"type:varchar(50);not null"`
	Inventory   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "farm_products"
}

// NewProduct creates a new product with zero inventory
func NewProduct(farmID uuid.UUID, name, description, unit string) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Product unit cannot be empty")
	}

	return &Product{
		FarmAggregateRoot: shared.NewFarmAggregateRoot(farmID),
		Name:              name,
		Description:       description,
		Unit:              unit,
		Inventory:         decimal.Zero,
	}, nil
}

// RecordProduction registers output and grows the inventory
func (p *Product) RecordProduction(quantity decimal.Decimal, productionDate time.Time, createdBy uuid.UUID) (*ProductionRecord, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Production quantity must be positive")
	}
	if productionDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Production date is required")
	}

	record := newProductionRecord(p, quantity, productionDate, createdBy)

	p.Inventory = p.Inventory.Add(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductionRecordedEvent(p, record))

	return record, nil
}

// RecordSale registers a sale: the total amount is derived from quantity and
// unit price at recording time and never recomputed. Inventory is allowed to
// go negative; the over-draw stays on the ledger rather than being rejected.
func (p *Product) RecordSale(buyerName string, quantity decimal.Decimal, unitPrice valueobject.Money, paymentMethod string, isPaid bool, saleDate time.Time, createdBy uuid.UUID) (*Sale, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if saleDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Sale date is required")
	}

	sale := newSale(p, buyerName, quantity, unitPrice.Amount(), paymentMethod, isPaid, saleDate, createdBy)

	p.Inventory = p.Inventory.Sub(quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewSaleRecordedEvent(p, sale))

	return sale, nil
}

// ReverseProduction soft-deletes a production record and removes its quantity
// from stock
func (p *Product) ReverseProduction(r *ProductionRecord, deletedBy uuid.UUID) error {
	if r.ProductID != p.ID {
		return shared.NewDomainError("PRODUCT_MISMATCH", "Production record belongs to a different product")
	}
	if err := r.markDeleted(deletedBy); err != nil {
		return err
	}

	p.Inventory = p.Inventory.Sub(r.Quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductionReversedEvent(p, r))

	return nil
}

// ReverseSale soft-deletes a sale and returns its quantity to stock. The sale
// keeps its total amount for audit.
func (p *Product) ReverseSale(s *Sale, deletedBy uuid.UUID) error {
	if s.ProductID != p.ID {
		return shared.NewDomainError("PRODUCT_MISMATCH", "Sale belongs to a different product")
	}
	if err := s.markDeleted(deletedBy); err != nil {
		return err
	}

	p.Inventory = p.Inventory.Add(s.Quantity)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewSaleReversedEvent(p, s))

	return nil
}

// Update applies editable descriptive fields. Inventory is never written
// directly.
func (p *Product) Update(name, description, unit string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Product unit cannot be empty")
	}

	p.Name = name
	p.Description = description
	p.Unit = unit
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// HasStock returns true if there is positive inventory
func (p *Product) HasStock() bool {
	return p.Inventory.GreaterThan(decimal.Zero)
}
