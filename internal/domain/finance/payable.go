package finance

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the derived settlement state of a payable entity.
// It is never written directly by clients; only reconciliation sets it.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending" // Nothing paid, not yet due
	PaymentStatusPartial PaymentStatus = "partial" // Some but not all paid
	PaymentStatusPaid    PaymentStatus = "paid"    // Fully settled
	PaymentStatusOverdue PaymentStatus = "overdue" // Nothing paid, past due date
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}

// PayableDocument carries the derived payment figures shared by every payable
// entity (Expense, EquipmentPurchase, Treatment). The concrete entity owns the
// transaction links and the total; reconciliation recomputes everything here.
type PayableDocument struct {
	TotalPaid     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PendingAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	DueDate       *time.Time      `gorm:"type:date;index"`
	PaymentDate   *time.Time      `gorm:"type:date"` // Stamped on the first transition to paid
}

// Reconcile derives total paid, pending amount and status from the current
// transaction links. Only outgoing transactions count as payments applied.
// Priority order: paid (total_cost covered, including a zero total), partial,
// overdue (nothing paid and past due), pending. PaymentDate is stamped the
// first time the document settles and is never moved afterwards.
func (d *PayableDocument) Reconcile(totalCost decimal.Decimal, links []Transaction, today time.Time) {
	totalPaid := decimal.Zero
	for i := range links {
		if links[i].IsOutgoing() {
			totalPaid = totalPaid.Add(links[i].Amount)
		}
	}

	pending := totalCost.Sub(totalPaid)
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	d.TotalPaid = totalPaid
	d.PendingAmount = pending

	switch {
	case totalPaid.GreaterThanOrEqual(totalCost):
		// The stamp survives detach/re-pay cycles; only the first
		// settlement sets it.
		if d.PaymentDate == nil {
			paidAt := today
			d.PaymentDate = &paidAt
		}
		d.PaymentStatus = PaymentStatusPaid
	case totalPaid.GreaterThan(decimal.Zero):
		d.PaymentStatus = PaymentStatusPartial
	case d.DueDate != nil && d.DueDate.Before(truncateToDay(today)):
		d.PaymentStatus = PaymentStatusOverdue
	default:
		d.PaymentStatus = PaymentStatusPending
	}
}

// IsPaid returns true if the document is fully settled
func (d *PayableDocument) IsPaid() bool {
	return d.PaymentStatus == PaymentStatusPaid
}

// NewPayableDocument returns an unreconciled document for a new payable entity.
// The caller runs Reconcile once the total and links are in place.
func NewPayableDocument(dueDate *time.Time) PayableDocument {
	return PayableDocument{
		TotalPaid:     decimal.Zero,
		PendingAmount: decimal.Zero,
		PaymentStatus: PaymentStatusPending,
		DueDate:       dueDate,
	}
}

// AttachTransaction validates and appends a transaction link. The transaction
// must belong to the same farm as the payable entity and must not already be
// linked. The caller re-runs Reconcile afterwards.
func AttachTransaction(links []Transaction, t *Transaction, farmID uuid.UUID) ([]Transaction, error) {
	if t == nil {
		return links, shared.NewDomainError("INVALID_TRANSACTION", "Transaction is required")
	}
	if t.FarmID != farmID {
		return links, shared.ErrFarmMismatch
	}
	for i := range links {
		if links[i].ID == t.ID {
			return links, shared.NewDomainError("ALREADY_LINKED", "Transaction is already linked to this record")
		}
	}
	return append(links, *t), nil
}

// DetachTransaction removes a transaction link by id
func DetachTransaction(links []Transaction, transactionID uuid.UUID) ([]Transaction, error) {
	for i := range links {
		if links[i].ID == transactionID {
			return append(links[:i:i], links[i+1:]...), nil
		}
	}
	return links, shared.NewDomainError("NOT_LINKED", "Transaction is not linked to this record")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
