package product

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for the Product aggregate.
// Save must use the aggregate Version as an optimistic concurrency token so
// concurrent sales on the same product cannot silently lose an update.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Product, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReferences(ctx context.Context, productID uuid.UUID) (int64, error)
}

// ProductionRecordRepository defines persistence operations for production records
type ProductionRecordRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*ProductionRecord, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ProductionRecord, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]ProductionRecord, error)
	Save(ctx context.Context, r *ProductionRecord) error
}

// SaleRepository defines persistence operations for sales
type SaleRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Sale, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Sale, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Sale, error)
	FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]Sale, error)
	Save(ctx context.Context, s *Sale) error
}
