package finance

import (
	"context"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionRepository defines persistence operations for ledger transactions.
// FindByID is unscoped so that linking a foreign farm's transaction fails the
// farm check instead of reading as missing.
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Transaction, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Transaction, error)
	FindByCode(ctx context.Context, code string) (*Transaction, error)
	Save(ctx context.Context, t *Transaction) error
}

// ExpenseRepository defines persistence operations for expenses. Save persists
// the derived payment figures and the transaction links in the same write.
type ExpenseRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Expense, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentRepository defines persistence operations for equipment
type EquipmentRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Equipment, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Equipment, error)
	Save(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentPurchaseRepository defines persistence operations for equipment purchases
type EquipmentPurchaseRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*EquipmentPurchase, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]EquipmentPurchase, error)
	Save(ctx context.Context, p *EquipmentPurchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}
