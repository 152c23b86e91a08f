package farm

import (
	"context"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FarmRepository defines persistence operations for the Farm aggregate
type FarmRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Farm, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Farm, error)
	FindByNameAndOwner(ctx context.Context, ownerID uuid.UUID, name string) (*Farm, error)
	Save(ctx context.Context, f *Farm) error
	Delete(ctx context.Context, id uuid.UUID) error
}
