package farm

import (
	"time"

	"github.com/farmstead/backend/internal/domain/farm"
	"github.com/google/uuid"
)

// FarmResponse represents a farm in API responses
type FarmResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Coordinates string    `json:"coordinates,omitempty"`
	Size        string    `json:"size,omitempty"`
	SizeUnit    string    `json:"size_unit,omitempty"`
	Description string    `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToFarmResponse converts a Farm to FarmResponse
func ToFarmResponse(f *farm.Farm) FarmResponse {
	return FarmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Code:        f.Code,
		Address:     f.Address,
		Phone:       f.Phone,
		Coordinates: f.Coordinates,
		Size:        f.Size,
		SizeUnit:    f.SizeUnit,
		Description: f.Description,
		OwnerID:     f.OwnerID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ToFarmResponses converts a slice of farms
func ToFarmResponses(farms []farm.Farm) []FarmResponse {
	responses := make([]FarmResponse, len(farms))
	for i := range farms {
		responses[i] = ToFarmResponse(&farms[i])
	}
	return responses
}

// CreateFarmRequest represents a request to create a farm
type CreateFarmRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Address     string `json:"address" binding:"max=255"`
	Phone       string `json:"phone" binding:"max=50"`
	Coordinates string `json:"coordinates" binding:"max=255"`
	Size        string `json:"size" binding:"max=255"`
	SizeUnit    string `json:"size_unit" binding:"max=255"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateFarmRequest represents a request to update a farm
type UpdateFarmRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Address     string `json:"address" binding:"max=255"`
	Phone       string `json:"phone" binding:"max=50"`
	Coordinates string `json:"coordinates" binding:"max=255"`
	Size        string `json:"size" binding:"max=255"`
	SizeUnit    string `json:"size_unit" binding:"max=255"`
	Description string `json:"description" binding:"max=255"`
}

// FarmListFilter represents filter options for farm lists
type FarmListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
