package finance

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Equipment is a piece of farm machinery or tooling. Purchases against it are
// tracked as separate payable documents.
type Equipment struct {
	shared.FarmAggregateRoot
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(500)"`
	Condition   string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Equipment) TableName() string {
	return "equipment"
}

// NewEquipment creates a new equipment record
func NewEquipment(farmID, createdBy uuid.UUID, name, description, condition string) (*Equipment, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Equipment name cannot be empty")
	}

	return &Equipment{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		Name:              name,
		Description:       description,
		Condition:         condition,
	}, nil
}

// EquipmentPurchase is the payable document for acquiring equipment
type EquipmentPurchase struct {
	shared.FarmAggregateRoot
	EquipmentID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalCost    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PurchaseDate time.Time       `gorm:"type:date;not null;index"`
	Supplier     string          `gorm:"type:varchar(255)"`
	PayableDocument
	Transactions []Transaction `gorm:"many2many:equipment_purchase_transactions"`
}

// TableName returns the table name for GORM
func (EquipmentPurchase) TableName() string {
	return "equipment_purchases"
}

// NewEquipmentPurchase creates a new equipment purchase and reconciles it
func NewEquipmentPurchase(farmID, createdBy, equipmentID uuid.UUID, totalCost valueobject.Money, purchaseDate time.Time, dueDate *time.Time, supplier string) (*EquipmentPurchase, error) {
	if equipmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EQUIPMENT", "Equipment ID cannot be empty")
	}
	if totalCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Purchase cost cannot be negative")
	}
	if purchaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Purchase date is required")
	}

	p := &EquipmentPurchase{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		EquipmentID:       equipmentID,
		TotalCost:         totalCost.Amount(),
		PurchaseDate:      purchaseDate,
		Supplier:          supplier,
		Transactions:      make([]Transaction, 0),
	}
	p.DueDate = dueDate
	p.Reconcile(p.TotalCost, p.Transactions, time.Now())

	return p, nil
}

// AddTransaction links a payment and re-runs reconciliation in the same write
func (p *EquipmentPurchase) AddTransaction(t *Transaction) error {
	links, err := AttachTransaction(p.Transactions, t, p.FarmID)
	if err != nil {
		return err
	}
	p.Transactions = links
	p.Reconcile(p.TotalCost, p.Transactions, time.Now())
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPayableReconciledEvent("EquipmentPurchase", p.ID, p.FarmID, p.PaymentStatus, p.PendingAmount))

	return nil
}

// RemoveTransaction unlinks a payment and re-runs reconciliation
func (p *EquipmentPurchase) RemoveTransaction(transactionID uuid.UUID) error {
	links, err := DetachTransaction(p.Transactions, transactionID)
	if err != nil {
		return err
	}
	p.Transactions = links
	p.Reconcile(p.TotalCost, p.Transactions, time.Now())
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPayableReconciledEvent("EquipmentPurchase", p.ID, p.FarmID, p.PaymentStatus, p.PendingAmount))

	return nil
}
