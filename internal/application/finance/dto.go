package finance

import (
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionResponse represents a ledger transaction in API responses
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	FarmID          uuid.UUID       `json:"farm_id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	TransactionCode string          `json:"transaction_code"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a Transaction to TransactionResponse
func ToTransactionResponse(t *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		FarmID:          t.FarmID,
		TransactionType: t.TransactionType.String(),
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		TransactionCode: t.TransactionCode,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions
func ToTransactionResponses(transactions []finance.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}

// ExpenseResponse represents an expense with its derived payment state
type ExpenseResponse struct {
	ID            uuid.UUID             `json:"id"`
	FarmID        uuid.UUID             `json:"farm_id"`
	Name          string                `json:"name"`
	Category      string                `json:"category,omitempty"`
	Amount        decimal.Decimal       `json:"amount"`
	TotalPaid     decimal.Decimal       `json:"total_paid"`
	PendingAmount decimal.Decimal       `json:"pending_amount"`
	PaymentStatus string                `json:"payment_status"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	PaymentDate   *time.Time            `json:"payment_date,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Transactions  []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ToExpenseResponse converts an Expense to ExpenseResponse
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		FarmID:        e.FarmID,
		Name:          e.Name,
		Category:      e.Category,
		Amount:        e.Amount,
		TotalPaid:     e.TotalPaid,
		PendingAmount: e.PendingAmount,
		PaymentStatus: e.PaymentStatus.String(),
		DueDate:       e.DueDate,
		PaymentDate:   e.PaymentDate,
		Notes:         e.Notes,
		Transactions:  ToTransactionResponses(e.Transactions),
		CreatedAt:     e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of expenses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// EquipmentResponse represents equipment in API responses
type EquipmentResponse struct {
	ID          uuid.UUID `json:"id"`
	FarmID      uuid.UUID `json:"farm_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Condition   string    `json:"condition,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToEquipmentResponse converts Equipment to EquipmentResponse
func ToEquipmentResponse(e *finance.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:          e.ID,
		FarmID:      e.FarmID,
		Name:        e.Name,
		Description: e.Description,
		Condition:   e.Condition,
		CreatedAt:   e.CreatedAt,
	}
}

// ToEquipmentResponses converts a slice of equipment
func ToEquipmentResponses(equipment []finance.Equipment) []EquipmentResponse {
	responses := make([]EquipmentResponse, len(equipment))
	for i := range equipment {
		responses[i] = ToEquipmentResponse(&equipment[i])
	}
	return responses
}

// EquipmentPurchaseResponse represents an equipment purchase with payment state
type EquipmentPurchaseResponse struct {
	ID            uuid.UUID             `json:"id"`
	FarmID        uuid.UUID             `json:"farm_id"`
	EquipmentID   uuid.UUID             `json:"equipment_id"`
	TotalCost     decimal.Decimal       `json:"total_cost"`
	TotalPaid     decimal.Decimal       `json:"total_paid"`
	PendingAmount decimal.Decimal       `json:"pending_amount"`
	PaymentStatus string                `json:"payment_status"`
	PurchaseDate  time.Time             `json:"purchase_date"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	PaymentDate   *time.Time            `json:"payment_date,omitempty"`
	Supplier      string                `json:"supplier,omitempty"`
	Transactions  []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ToEquipmentPurchaseResponse converts an EquipmentPurchase to its response
func ToEquipmentPurchaseResponse(p *finance.EquipmentPurchase) EquipmentPurchaseResponse {
	return EquipmentPurchaseResponse{
		ID:            p.ID,
		FarmID:        p.FarmID,
		EquipmentID:   p.EquipmentID,
		TotalCost:     p.TotalCost,
		TotalPaid:     p.TotalPaid,
		PendingAmount: p.PendingAmount,
		PaymentStatus: p.PaymentStatus.String(),
		PurchaseDate:  p.PurchaseDate,
		DueDate:       p.DueDate,
		PaymentDate:   p.PaymentDate,
		Supplier:      p.Supplier,
		Transactions:  ToTransactionResponses(p.Transactions),
		CreatedAt:     p.CreatedAt,
	}
}

// ToEquipmentPurchaseResponses converts a slice of equipment purchases
func ToEquipmentPurchaseResponses(purchases []finance.EquipmentPurchase) []EquipmentPurchaseResponse {
	responses := make([]EquipmentPurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToEquipmentPurchaseResponse(&purchases[i])
	}
	return responses
}

// CreateTransactionRequest represents a request to record a ledger transaction
type CreateTransactionRequest struct {
	TransactionType string          `json:"transaction_type" binding:"required,oneof=incoming outgoing"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate *time.Time      `json:"transaction_date"`
	Description     string          `json:"description" binding:"max=255"`
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Category string          `json:"category" binding:"max=100"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  *time.Time      `json:"due_date"`
	Notes    string          `json:"notes"`
}

// UpdateExpenseRequest represents a request to update an expense
type UpdateExpenseRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Category string          `json:"category" binding:"max=100"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  *time.Time      `json:"due_date"`
	Notes    string          `json:"notes"`
}

// CreateEquipmentRequest represents a request to register equipment
type CreateEquipmentRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
	Condition   string `json:"condition" binding:"max=50"`
}

// CreateEquipmentPurchaseRequest represents a request to record an equipment purchase
type CreateEquipmentPurchaseRequest struct {
	EquipmentID  uuid.UUID       `json:"equipment_id" binding:"required"`
	TotalCost    decimal.Decimal `json:"total_cost" binding:"required"`
	PurchaseDate *time.Time      `json:"purchase_date"`
	DueDate      *time.Time      `json:"due_date"`
	Supplier     string          `json:"supplier" binding:"max=255"`
}

// LinkTransactionRequest links an existing transaction to a payable record
type LinkTransactionRequest struct {
	TransactionID uuid.UUID `json:"transaction_id" binding:"required"`
}

// ListFilter represents common filter options for finance lists
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=pending partial paid overdue"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
