package finance

import (
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for the finance aggregates
const (
	EventTypeTransactionCreated = "finance.transaction_created"
	EventTypePayableReconciled  = "finance.payable_reconciled"
)

// TransactionCreatedEvent is emitted when a ledger transaction is recorded
type TransactionCreatedEvent struct {
	shared.BaseDomainEvent
	TransactionCode string          `json:"transaction_code"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
}

// NewTransactionCreatedEvent creates a new TransactionCreatedEvent
func NewTransactionCreatedEvent(t *Transaction) *TransactionCreatedEvent {
	return &TransactionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionCreated, "Transaction", t.ID, t.FarmID),
		TransactionCode: t.TransactionCode,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
	}
}

// PayableReconciledEvent is emitted every time a payable's derived payment
// figures are recomputed
type PayableReconciledEvent struct {
	shared.BaseDomainEvent
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

// NewPayableReconciledEvent creates a new PayableReconciledEvent
func NewPayableReconciledEvent(aggType string, aggID, farmID uuid.UUID, status PaymentStatus, pending decimal.Decimal) *PayableReconciledEvent {
	return &PayableReconciledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePayableReconciled, aggType, aggID, farmID),
		PaymentStatus:   status,
		PendingAmount:   pending,
	}
}
