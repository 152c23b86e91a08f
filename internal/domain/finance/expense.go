package finance

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a general farm expense whose settlement is derived from linked
// outgoing transactions.
type Expense struct {
	shared.FarmAggregateRoot
	Name        string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(100);index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Notes       string          `gorm:"type:varchar(500)"`
	PayableDocument
	Transactions []Transaction `gorm:"many2many:expense_transactions"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense. A freshly created expense is reconciled
// immediately so a zero-amount expense starts out paid and a past due date
// starts out overdue.
func NewExpense(farmID, createdBy uuid.UUID, name, category string, amount valueobject.Money, dueDate *time.Time, notes string) (*Expense, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Expense name cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}

	e := &Expense{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		Name:              name,
		Category:          category,
		Amount:            amount.Amount(),
		Notes:             notes,
		Transactions:      make([]Transaction, 0),
	}
	e.DueDate = dueDate
	e.Reconcile(e.Amount, e.Transactions, time.Now())

	return e, nil
}

// AddTransaction links a payment and re-runs reconciliation in the same write
func (e *Expense) AddTransaction(t *Transaction) error {
	links, err := AttachTransaction(e.Transactions, t, e.FarmID)
	if err != nil {
		return err
	}
	e.Transactions = links
	e.Reconcile(e.Amount, e.Transactions, time.Now())
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewPayableReconciledEvent("Expense", e.ID, e.FarmID, e.PaymentStatus, e.PendingAmount))

	return nil
}

// RemoveTransaction unlinks a payment and re-runs reconciliation
func (e *Expense) RemoveTransaction(transactionID uuid.UUID) error {
	links, err := DetachTransaction(e.Transactions, transactionID)
	if err != nil {
		return err
	}
	e.Transactions = links
	e.Reconcile(e.Amount, e.Transactions, time.Now())
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	e.AddDomainEvent(NewPayableReconciledEvent("Expense", e.ID, e.FarmID, e.PaymentStatus, e.PendingAmount))

	return nil
}

// Update applies editable fields and re-reconciles, since amount or due date
// changes can move the derived status
func (e *Expense) Update(name, category string, amount valueobject.Money, dueDate *time.Time, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Expense name cannot be empty")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}

	e.Name = name
	e.Category = category
	e.Amount = amount.Amount()
	e.DueDate = dueDate
	e.Notes = notes
	e.Reconcile(e.Amount, e.Transactions, time.Now())
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}
