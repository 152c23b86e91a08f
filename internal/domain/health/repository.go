package health

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TreatmentRepository defines persistence operations for treatment cost
// documents. Save persists the derived payment figures and the transaction
// links in the same write.
type TreatmentRepository interface {
	FindByIDForFarm(ctx context.Context, farmID, id uuid.UUID) (*Treatment, error)
	FindAllForFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Treatment, error)
	FindByAnimal(ctx context.Context, farmID, animalID uuid.UUID, filter shared.Filter) ([]Treatment, error)
	FindByDateRange(ctx context.Context, farmID uuid.UUID, start, end time.Time) ([]Treatment, error)
	Save(ctx context.Context, t *Treatment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
