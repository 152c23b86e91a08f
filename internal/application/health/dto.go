package health

import (
	"time"

	financeapp "github.com/farmstead/backend/internal/application/finance"
	"github.com/farmstead/backend/internal/domain/health"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreatmentResponse represents a treatment cost document in API responses
type TreatmentResponse struct {
	ID             uuid.UUID                        `json:"id"`
	FarmID         uuid.UUID                        `json:"farm_id"`
	AnimalID       uuid.UUID                        `json:"animal_id"`
	VetServiceName string                           `json:"vet_service_name,omitempty"`
	TreatmentDate  time.Time                        `json:"treatment_date"`
	Quantity       decimal.Decimal                  `json:"quantity"`
	Cost           decimal.Decimal                  `json:"cost"`
	TotalPaid      decimal.Decimal                  `json:"total_paid"`
	PendingAmount  decimal.Decimal                  `json:"pending_amount"`
	PaymentStatus  string                           `json:"payment_status"`
	IsPaid         bool                             `json:"is_paid"`
	DueDate        *time.Time                       `json:"due_date,omitempty"`
	PaymentDate    *time.Time                       `json:"payment_date,omitempty"`
	Notes          string                           `json:"notes,omitempty"`
	Transactions   []financeapp.TransactionResponse `json:"transactions,omitempty"`
	CreatedAt      time.Time                        `json:"created_at"`
}

// ToTreatmentResponse converts a Treatment to TreatmentResponse
func ToTreatmentResponse(t *health.Treatment) TreatmentResponse {
	return TreatmentResponse{
		ID:             t.ID,
		FarmID:         t.FarmID,
		AnimalID:       t.AnimalID,
		VetServiceName: t.VetServiceName,
		TreatmentDate:  t.TreatmentDate,
		Quantity:       t.Quantity,
		Cost:           t.Cost,
		TotalPaid:      t.TotalPaid,
		PendingAmount:  t.PendingAmount,
		PaymentStatus:  t.PaymentStatus.String(),
		IsPaid:         t.IsPaid(),
		DueDate:        t.DueDate,
		PaymentDate:    t.PaymentDate,
		Notes:          t.Notes,
		Transactions:   financeapp.ToTransactionResponses(t.Transactions),
		CreatedAt:      t.CreatedAt,
	}
}

// ToTreatmentResponses converts a slice of treatments
func ToTreatmentResponses(treatments []health.Treatment) []TreatmentResponse {
	responses := make([]TreatmentResponse, len(treatments))
	for i := range treatments {
		responses[i] = ToTreatmentResponse(&treatments[i])
	}
	return responses
}

// CreateTreatmentRequest represents a request to record a treatment
type CreateTreatmentRequest struct {
	AnimalID       uuid.UUID       `json:"animal_id" binding:"required"`
	VetServiceName string          `json:"vet_service_name" binding:"max=120"`
	TreatmentDate  *time.Time      `json:"treatment_date"`
	Quantity       decimal.Decimal `json:"quantity"`
	Cost           decimal.Decimal `json:"cost" binding:"required"`
	DueDate        *time.Time      `json:"due_date"`
	Notes          string          `json:"notes"`
}

// UpdateTreatmentRequest represents a request to update a treatment
type UpdateTreatmentRequest struct {
	VetServiceName string          `json:"vet_service_name" binding:"max=120"`
	TreatmentDate  time.Time       `json:"treatment_date" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	Cost           decimal.Decimal `json:"cost" binding:"required"`
	DueDate        *time.Time      `json:"due_date"`
	Notes          string          `json:"notes"`
}

// TreatmentListFilter represents filter options for treatment lists
type TreatmentListFilter struct {
	AnimalID *uuid.UUID `form:"animal_id"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
