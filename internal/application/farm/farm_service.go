package farm

import (
	"context"
	"errors"

	"github.com/farmstead/backend/internal/domain/farm"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FarmService handles farm lifecycle operations. Access control is
// ownership-based: every operation is scoped to the requesting user's farms.
type FarmService struct {
	farmRepo       farm.FarmRepository
	eventPublisher shared.EventPublisher
}

// NewFarmService creates a new FarmService
func NewFarmService(farmRepo farm.FarmRepository) *FarmService {
	return &FarmService{farmRepo: farmRepo}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *FarmService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateFarm creates a farm owned by the requesting user. Farm names are
// unique per owner.
func (s *FarmService) CreateFarm(ctx context.Context, ownerID uuid.UUID, req CreateFarmRequest) (*FarmResponse, error) {
	existing, err := s.farmRepo.FindByNameAndOwner(ctx, ownerID, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	f, err := farm.NewFarm(ownerID, req.Name, req.Address, req.Phone, req.Coordinates, req.Size, req.SizeUnit, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.farmRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, f.GetDomainEvents()...)
		f.ClearDomainEvents()
	}

	response := ToFarmResponse(f)
	return &response, nil
}

// GetFarm retrieves one of the user's farms
func (s *FarmService) GetFarm(ctx context.Context, ownerID, farmID uuid.UUID) (*FarmResponse, error) {
	f, err := s.authorize(ctx, ownerID, farmID)
	if err != nil {
		return nil, err
	}
	response := ToFarmResponse(f)
	return &response, nil
}

// ListFarms retrieves the user's farms
func (s *FarmService) ListFarms(ctx context.Context, ownerID uuid.UUID, filter FarmListFilter) ([]FarmResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	farms, err := s.farmRepo.FindByOwner(ctx, ownerID, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, err
	}
	return ToFarmResponses(farms), nil
}

// UpdateFarm updates a farm's editable fields; the code stays fixed
func (s *FarmService) UpdateFarm(ctx context.Context, ownerID, farmID uuid.UUID, req UpdateFarmRequest) (*FarmResponse, error) {
	f, err := s.authorize(ctx, ownerID, farmID)
	if err != nil {
		return nil, err
	}

	if err := f.Update(req.Name, req.Address, req.Phone, req.Coordinates, req.Size, req.SizeUnit, req.Description); err != nil {
		return nil, err
	}

	if err := s.farmRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	response := ToFarmResponse(f)
	return &response, nil
}

// DeleteFarm removes a farm owned by the user
func (s *FarmService) DeleteFarm(ctx context.Context, ownerID, farmID uuid.UUID) error {
	f, err := s.authorize(ctx, ownerID, farmID)
	if err != nil {
		return err
	}
	return s.farmRepo.Delete(ctx, f.ID)
}

// Authorize verifies the farm exists and belongs to the user. Handlers call it
// before delegating farm-scoped work to other services.
func (s *FarmService) Authorize(ctx context.Context, ownerID, farmID uuid.UUID) error {
	_, err := s.authorize(ctx, ownerID, farmID)
	return err
}

func (s *FarmService) authorize(ctx context.Context, ownerID, farmID uuid.UUID) (*farm.Farm, error) {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	if f.OwnerID != ownerID {
		return nil, shared.ErrForbidden
	}
	return f, nil
}
