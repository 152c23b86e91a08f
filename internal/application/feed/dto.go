package feed

import (
	"time"

	"github.com/farmstead/backend/internal/domain/feed"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeedResponse represents a feed stock position in API responses
type FeedResponse struct {
	ID          uuid.UUID       `json:"id"`
	FarmID      uuid.UUID       `json:"farm_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	FeedTypeID  uuid.UUID       `json:"feed_type_id"`
	Unit        string          `json:"unit"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Inventory   decimal.Decimal `json:"inventory"`
	StockValue  decimal.Decimal `json:"stock_value"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ToFeedResponse converts a Feed to FeedResponse
func ToFeedResponse(f *feed.Feed) FeedResponse {
	return FeedResponse{
		ID:          f.ID,
		FarmID:      f.FarmID,
		Name:        f.Name,
		Description: f.Description,
		FeedTypeID:  f.FeedTypeID,
		Unit:        f.Unit,
		CostPerUnit: f.CostPerUnit,
		Inventory:   f.Inventory,
		StockValue:  f.StockValue(),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
		Version:     f.GetVersion(),
	}
}

// ToFeedResponses converts a slice of feeds
func ToFeedResponses(feeds []feed.Feed) []FeedResponse {
	responses := make([]FeedResponse, len(feeds))
	for i := range feeds {
		responses[i] = ToFeedResponse(&feeds[i])
	}
	return responses
}

// FeedTypeResponse represents a feed type in API responses
type FeedTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	FarmID      uuid.UUID `json:"farm_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToFeedTypeResponse converts a FeedType to FeedTypeResponse
func ToFeedTypeResponse(t *feed.FeedType) FeedTypeResponse {
	return FeedTypeResponse{
		ID:          t.ID,
		FarmID:      t.FarmID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// ToFeedTypeResponses converts a slice of feed types
func ToFeedTypeResponses(types []feed.FeedType) []FeedTypeResponse {
	responses := make([]FeedTypeResponse, len(types))
	for i := range types {
		responses[i] = ToFeedTypeResponse(&types[i])
	}
	return responses
}

// FeedPurchaseResponse represents a purchase in API responses
type FeedPurchaseResponse struct {
	ID           uuid.UUID       `json:"id"`
	FarmID       uuid.UUID       `json:"farm_id"`
	FeedID       uuid.UUID       `json:"feed_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	PurchaseDate time.Time       `json:"purchase_date"`
	IsPaid       bool            `json:"is_paid"`
	IsDeleted    bool            `json:"is_deleted"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToFeedPurchaseResponse converts a FeedPurchase to FeedPurchaseResponse
func ToFeedPurchaseResponse(p *feed.FeedPurchase) FeedPurchaseResponse {
	return FeedPurchaseResponse{
		ID:           p.ID,
		FarmID:       p.FarmID,
		FeedID:       p.FeedID,
		Quantity:     p.Quantity,
		Cost:         p.Cost,
		UnitCost:     p.UnitCost(),
		PurchaseDate: p.PurchaseDate,
		IsPaid:       p.IsPaid,
		IsDeleted:    p.IsDeleted,
		CreatedAt:    p.CreatedAt,
	}
}

// ToFeedPurchaseResponses converts a slice of purchases
func ToFeedPurchaseResponses(purchases []feed.FeedPurchase) []FeedPurchaseResponse {
	responses := make([]FeedPurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToFeedPurchaseResponse(&purchases[i])
	}
	return responses
}

// FeedEntryResponse represents a consumption entry in API responses
type FeedEntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	FarmID       uuid.UUID       `json:"farm_id"`
	FeedID       uuid.UUID       `json:"feed_id"`
	AnimalTypeID uuid.UUID       `json:"animal_type_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	FeedDate     time.Time       `json:"feed_date"`
	IsDeleted    bool            `json:"is_deleted"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToFeedEntryResponse converts a FeedEntry to FeedEntryResponse
func ToFeedEntryResponse(e *feed.FeedEntry) FeedEntryResponse {
	return FeedEntryResponse{
		ID:           e.ID,
		FarmID:       e.FarmID,
		FeedID:       e.FeedID,
		AnimalTypeID: e.AnimalTypeID,
		Quantity:     e.Quantity,
		CostPerUnit:  e.CostPerUnit,
		TotalCost:    e.TotalCost,
		FeedDate:     e.FeedDate,
		IsDeleted:    e.IsDeleted,
		CreatedAt:    e.CreatedAt,
	}
}

// ToFeedEntryResponses converts a slice of entries
func ToFeedEntryResponses(entries []feed.FeedEntry) []FeedEntryResponse {
	responses := make([]FeedEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToFeedEntryResponse(&entries[i])
	}
	return responses
}

// CreateFeedRequest represents a request to create a feed
type CreateFeedRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description string    `json:"description" binding:"max=255"`
	FeedTypeID  uuid.UUID `json:"feed_type_id" binding:"required"`
	Unit        string    `json:"unit" binding:"required,max=50"`
}

// UpdateFeedRequest represents a request to update a feed's descriptive fields
type UpdateFeedRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
	Unit        string `json:"unit" binding:"required,max=50"`
}

// CreateFeedTypeRequest represents a request to create a feed type
type CreateFeedTypeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateFeedTypeRequest represents a request to rename a feed type
type UpdateFeedTypeRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
}

// RecordPurchaseRequest represents a request to record a feed purchase
type RecordPurchaseRequest struct {
	FeedID       uuid.UUID       `json:"feed_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Cost         decimal.Decimal `json:"cost" binding:"required"` // Total purchase cost
	PurchaseDate *time.Time      `json:"purchase_date"`
	IsPaid       bool            `json:"is_paid"`
}

// RecordEntryRequest represents a request to record feed consumption
type RecordEntryRequest struct {
	FeedID       uuid.UUID       `json:"feed_id" binding:"required"`
	AnimalTypeID uuid.UUID       `json:"animal_type_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	FeedDate     *time.Time      `json:"feed_date"`
}

// FeedListFilter represents filter options for feed lists
type FeedListFilter struct {
	Search     string     `form:"search"`
	FeedTypeID *uuid.UUID `form:"feed_type_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
