package product

import (
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for the product aggregate
const (
	EventTypeProductionRecorded = "product.production_recorded"
	EventTypeSaleRecorded       = "product.sale_recorded"
	EventTypeProductionReversed = "product.production_reversed"
	EventTypeSaleReversed       = "product.sale_reversed"
)

// ProductionRecordedEvent is emitted when output increases stock
type ProductionRecordedEvent struct {
	shared.BaseDomainEvent
	RecordID     uuid.UUID       `json:"record_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewProductionRecordedEvent creates a new ProductionRecordedEvent
func NewProductionRecordedEvent(p *Product, r *ProductionRecord) *ProductionRecordedEvent {
	return &ProductionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductionRecorded, "Product", p.ID, p.FarmID),
		RecordID:        r.ID,
		Quantity:        r.Quantity,
		NewInventory:    p.Inventory,
	}
}

// SaleRecordedEvent is emitted when a sale decreases stock
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	SaleID       uuid.UUID       `json:"sale_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(p *Product, s *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, "Product", p.ID, p.FarmID),
		SaleID:          s.ID,
		Quantity:        s.Quantity,
		TotalAmount:     s.TotalAmount,
		NewInventory:    p.Inventory,
	}
}

// ProductionReversedEvent is emitted when a production record is soft-deleted
type ProductionReversedEvent struct {
	shared.BaseDomainEvent
	RecordID     uuid.UUID       `json:"record_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewProductionReversedEvent creates a new ProductionReversedEvent
func NewProductionReversedEvent(p *Product, r *ProductionRecord) *ProductionReversedEvent {
	return &ProductionReversedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductionReversed, "Product", p.ID, p.FarmID),
		RecordID:        r.ID,
		Quantity:        r.Quantity,
		NewInventory:    p.Inventory,
	}
}

// SaleReversedEvent is emitted when a sale is soft-deleted and stock restored
type SaleReversedEvent struct {
	shared.BaseDomainEvent
	SaleID       uuid.UUID       `json:"sale_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	NewInventory decimal.Decimal `json:"new_inventory"`
}

// NewSaleReversedEvent creates a new SaleReversedEvent
func NewSaleReversedEvent(p *Product, s *Sale) *SaleReversedEvent {
	return &SaleReversedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleReversed, "Product", p.ID, p.FarmID),
		SaleID:          s.ID,
		Quantity:        s.Quantity,
		NewInventory:    p.Inventory,
	}
}
