package health

import (
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Treatment records a veterinary intervention and its cost. The clinical
// details live elsewhere; this aggregate carries the payment surface and is
// reconciled against linked transactions like any other payable.
type Treatment struct {
	shared.FarmAggregateRoot
	finance.PayableDocument
	AnimalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	VetServiceName string          `gorm:"type:varchar(120)"`
	TreatmentDate  time.Time       `gorm:"type:date;not null;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Cost           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes          string          `gorm:"type:text"`

	Transactions []finance.Transaction `gorm:"many2many:treatment_transactions"`
}

// TableName returns the table name for GORM
func (Treatment) TableName() string {
	return "treatments"
}

// NewTreatment creates a treatment record and reconciles its payment state
func NewTreatment(farmID, createdBy, animalID uuid.UUID, vetServiceName string, treatmentDate time.Time, quantity decimal.Decimal, cost valueobject.Money, dueDate *time.Time, notes string) (*Treatment, error) {
	if animalID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ANIMAL", "Animal ID cannot be empty")
	}
	if treatmentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Treatment date is required")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Treatment cost cannot be negative")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Treatment quantity cannot be negative")
	}

	t := &Treatment{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		PayableDocument:   finance.NewPayableDocument(dueDate),
		AnimalID:          animalID,
		VetServiceName:    vetServiceName,
		TreatmentDate:     treatmentDate,
		Quantity:          quantity,
		Cost:              cost.Amount(),
		Notes:             notes,
		Transactions:      make([]finance.Transaction, 0),
	}
	t.Reconcile(t.Cost, t.Transactions, time.Now())

	t.AddDomainEvent(NewTreatmentRecordedEvent(t))

	return t, nil
}

// AddTransaction links a payment and re-derives the payment state
func (t *Treatment) AddTransaction(tx *finance.Transaction) error {
	links, err := finance.AttachTransaction(t.Transactions, tx, t.FarmID)
	if err != nil {
		return err
	}
	t.Transactions = links
	t.Reconcile(t.Cost, t.Transactions, time.Now())
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(finance.NewPayableReconciledEvent("Treatment", t.ID, t.FarmID, t.PaymentStatus, t.PendingAmount))

	return nil
}

// RemoveTransaction unlinks a payment and re-derives the payment state
func (t *Treatment) RemoveTransaction(transactionID uuid.UUID) error {
	links, err := finance.DetachTransaction(t.Transactions, transactionID)
	if err != nil {
		return err
	}
	t.Transactions = links
	t.Reconcile(t.Cost, t.Transactions, time.Now())
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(finance.NewPayableReconciledEvent("Treatment", t.ID, t.FarmID, t.PaymentStatus, t.PendingAmount))

	return nil
}

// Update applies editable fields and re-reconciles
func (t *Treatment) Update(vetServiceName string, treatmentDate time.Time, quantity decimal.Decimal, cost valueobject.Money, dueDate *time.Time, notes string) error {
	if treatmentDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Treatment date is required")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Treatment cost cannot be negative")
	}
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Treatment quantity cannot be negative")
	}

	t.VetServiceName = vetServiceName
	t.TreatmentDate = treatmentDate
	t.Quantity = quantity
	t.Cost = cost.Amount()
	t.DueDate = dueDate
	t.Notes = notes
	t.Reconcile(t.Cost, t.Transactions, time.Now())
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}
