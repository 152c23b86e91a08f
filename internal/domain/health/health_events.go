package health

import (
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreatmentRecordedEvent is raised when a treatment cost document is created
type TreatmentRecordedEvent struct {
	shared.BaseDomainEvent
	AnimalID uuid.UUID       `json:"animal_id"`
	Cost     decimal.Decimal `json:"cost"`
}

// NewTreatmentRecordedEvent creates a new TreatmentRecordedEvent
func NewTreatmentRecordedEvent(t *Treatment) *TreatmentRecordedEvent {
	return &TreatmentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("health.treatment.recorded", "Treatment", t.ID, t.FarmID),
		AnimalID:        t.AnimalID,
		Cost:            t.Cost,
	}
}
