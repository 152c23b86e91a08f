package health

import (
	"context"
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/health"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// HealthService handles treatment cost documents and their payment links
type HealthService struct {
	treatmentRepo   health.TreatmentRepository
	transactionRepo finance.TransactionRepository
	eventPublisher  shared.EventPublisher
}

// NewHealthService creates a new HealthService
func NewHealthService(treatmentRepo health.TreatmentRepository, transactionRepo finance.TransactionRepository) *HealthService {
	return &HealthService{
		treatmentRepo:   treatmentRepo,
		transactionRepo: transactionRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *HealthService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *HealthService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
}

// CreateTreatment records a treatment; a zero-cost treatment starts out paid
func (s *HealthService) CreateTreatment(ctx context.Context, farmID, userID uuid.UUID, req CreateTreatmentRequest) (*TreatmentResponse, error) {
	treatmentDate := time.Now()
	if req.TreatmentDate != nil {
		treatmentDate = *req.TreatmentDate
	}

	t, err := health.NewTreatment(farmID, userID, req.AnimalID, req.VetServiceName, treatmentDate, req.Quantity, valueobject.NewMoneyUSD(req.Cost), req.DueDate, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.treatmentRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t.GetDomainEvents())
	t.ClearDomainEvents()

	response := ToTreatmentResponse(t)
	return &response, nil
}

// GetTreatment retrieves a treatment with its payment state
func (s *HealthService) GetTreatment(ctx context.Context, farmID, treatmentID uuid.UUID) (*TreatmentResponse, error) {
	t, err := s.treatmentRepo.FindByIDForFarm(ctx, farmID, treatmentID)
	if err != nil {
		return nil, err
	}
	response := ToTreatmentResponse(t)
	return &response, nil
}

// ListTreatments retrieves a farm's treatments, optionally for one animal
func (s *HealthService) ListTreatments(ctx context.Context, farmID uuid.UUID, filter TreatmentListFilter) ([]TreatmentResponse, error) {
	domainFilter := buildFilter(filter)

	var treatments []health.Treatment
	var err error
	if filter.AnimalID != nil {
		treatments, err = s.treatmentRepo.FindByAnimal(ctx, farmID, *filter.AnimalID, domainFilter)
	} else {
		treatments, err = s.treatmentRepo.FindAllForFarm(ctx, farmID, domainFilter)
	}
	if err != nil {
		return nil, err
	}
	return ToTreatmentResponses(treatments), nil
}

// UpdateTreatment updates a treatment and re-derives its payment state
func (s *HealthService) UpdateTreatment(ctx context.Context, farmID, treatmentID uuid.UUID, req UpdateTreatmentRequest) (*TreatmentResponse, error) {
	t, err := s.treatmentRepo.FindByIDForFarm(ctx, farmID, treatmentID)
	if err != nil {
		return nil, err
	}

	if err := t.Update(req.VetServiceName, req.TreatmentDate, req.Quantity, valueobject.NewMoneyUSD(req.Cost), req.DueDate, req.Notes); err != nil {
		return nil, err
	}

	if err := s.treatmentRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTreatmentResponse(t)
	return &response, nil
}

// DeleteTreatment removes a treatment
func (s *HealthService) DeleteTreatment(ctx context.Context, farmID, treatmentID uuid.UUID) error {
	t, err := s.treatmentRepo.FindByIDForFarm(ctx, farmID, treatmentID)
	if err != nil {
		return err
	}
	return s.treatmentRepo.Delete(ctx, t.ID)
}

// AddTreatmentTransaction links a transaction to a treatment and reconciles it
func (s *HealthService) AddTreatmentTransaction(ctx context.Context, farmID, treatmentID, transactionID uuid.UUID) (*TreatmentResponse, error) {
	t, err := s.treatmentRepo.FindByIDForFarm(ctx, farmID, treatmentID)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := t.AddTransaction(tx); err != nil {
		return nil, err
	}

	if err := s.treatmentRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t.GetDomainEvents())
	t.ClearDomainEvents()

	response := ToTreatmentResponse(t)
	return &response, nil
}

// RemoveTreatmentTransaction unlinks a transaction from a treatment
func (s *HealthService) RemoveTreatmentTransaction(ctx context.Context, farmID, treatmentID, transactionID uuid.UUID) (*TreatmentResponse, error) {
	t, err := s.treatmentRepo.FindByIDForFarm(ctx, farmID, treatmentID)
	if err != nil {
		return nil, err
	}

	if err := t.RemoveTransaction(transactionID); err != nil {
		return nil, err
	}

	if err := s.treatmentRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t.GetDomainEvents())
	t.ClearDomainEvents()

	response := ToTreatmentResponse(t)
	return &response, nil
}

func buildFilter(filter TreatmentListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "treatment_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}
}
