package product

import (
	"time"

	"github.com/farmstead/backend/internal/domain/product"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	FarmID      uuid.UUID       `json:"farm_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Unit        string          `json:"unit"`
	Inventory   decimal.Decimal `json:"inventory"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse converts a Product to ProductResponse
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		FarmID:      p.FarmID,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		Inventory:   p.Inventory,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []product.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ProductionRecordResponse represents a production record in API responses
type ProductionRecordResponse struct {
	ID             uuid.UUID       `json:"id"`
	FarmID         uuid.UUID       `json:"farm_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	ProductionDate time.Time       `json:"production_date"`
	IsDeleted      bool            `json:"is_deleted"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
	DeletedBy      *uuid.UUID      `json:"deleted_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToProductionRecordResponse converts a ProductionRecord to ProductionRecordResponse
func ToProductionRecordResponse(r *product.ProductionRecord) ProductionRecordResponse {
	return ProductionRecordResponse{
		ID:             r.ID,
		FarmID:         r.FarmID,
		ProductID:      r.ProductID,
		Quantity:       r.Quantity,
		ProductionDate: r.ProductionDate,
		IsDeleted:      r.IsDeleted,
		DeletedAt:      r.DeletedAt,
		DeletedBy:      r.DeletedBy,
		CreatedAt:      r.CreatedAt,
	}
}

// ToProductionRecordResponses converts a slice of production records
func ToProductionRecordResponses(records []product.ProductionRecord) []ProductionRecordResponse {
	responses := make([]ProductionRecordResponse, len(records))
	for i := range records {
		responses[i] = ToProductionRecordResponse(&records[i])
	}
	return responses
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID       `json:"id"`
	FarmID        uuid.UUID       `json:"farm_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	BuyerName     string          `json:"buyer_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	IsPaid        bool            `json:"is_paid"`
	SaleDate      time.Time       `json:"sale_date"`
	IsDeleted     bool            `json:"is_deleted"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	DeletedBy     *uuid.UUID      `json:"deleted_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToSaleResponse converts a Sale to SaleResponse
func ToSaleResponse(s *product.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID,
		FarmID:        s.FarmID,
		ProductID:     s.ProductID,
		BuyerName:     s.BuyerName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		IsPaid:        s.IsPaid,
		SaleDate:      s.SaleDate,
		IsDeleted:     s.IsDeleted,
		DeletedAt:     s.DeletedAt,
		DeletedBy:     s.DeletedBy,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of sales
func ToSaleResponses(sales []product.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=255"`
	Unit        string `json:"unit" binding:"required,min=1,max=50"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=255"`
	Unit        string `json:"unit" binding:"required,min=1,max=50"`
}

// RecordProductionRequest represents a request to record production output
type RecordProductionRequest struct {
	ProductID      uuid.UUID       `json:"product_id" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
	ProductionDate *time.Time      `json:"production_date"`
}

// RecordSaleRequest represents a request to record a sale
type RecordSaleRequest struct {
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	BuyerName     string          `json:"buyer_name" binding:"max=255"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"max=50"`
	IsPaid        bool            `json:"is_paid"`
	SaleDate      *time.Time      `json:"sale_date"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	ProductID *uuid.UUID `form:"product_id"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
