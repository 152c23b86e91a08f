package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies cash movement direction
type TransactionType string

const (
	TransactionTypeIncoming TransactionType = "incoming"
	TransactionTypeOutgoing TransactionType = "outgoing"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncoming || t == TransactionTypeOutgoing
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// Transaction is a cash movement on a farm's general ledger. Its identity is
// immutable once created; payable entities reference transactions as payments
// applied, they never mutate them.
type Transaction struct {
	shared.FarmAggregateRoot
	TransactionType TransactionType `gorm:"type:varchar(20);not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TransactionDate time.Time       `gorm:"type:date;not null;index"`
	TransactionCode string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	Description     string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "farm_transactions"
}

// NewTransaction creates a new immutable transaction with a generated code
func NewTransaction(farmID, createdBy uuid.UUID, txType TransactionType, amount valueobject.Money, txDate time.Time, description string) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be incoming or outgoing")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	if txDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}

	tx := &Transaction{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		TransactionType:   txType,
		Amount:            amount.Amount(),
		TransactionDate:   txDate,
		TransactionCode:   generateTransactionCode(),
		Description:       description,
	}

	tx.AddDomainEvent(NewTransactionCreatedEvent(tx))

	return tx, nil
}

// IsOutgoing returns true for outgoing cash movements
func (t *Transaction) IsOutgoing() bool {
	return t.TransactionType == TransactionTypeOutgoing
}

// IsIncoming returns true for incoming cash movements
func (t *Transaction) IsIncoming() bool {
	return t.TransactionType == TransactionTypeIncoming
}

// generateTransactionCode builds codes like "TXN-1C9A4F2E"
func generateTransactionCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN-%s", suffix)
}
