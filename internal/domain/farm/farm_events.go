package farm

import (
	"github.com/farmstead/backend/internal/domain/shared"
)

// Event types for the farm aggregate
const (
	EventTypeFarmCreated = "farm.created"
	EventTypeFarmDeleted = "farm.deleted"
)

// FarmCreatedEvent is emitted when a farm is created
type FarmCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewFarmCreatedEvent creates a new FarmCreatedEvent
func NewFarmCreatedEvent(f *Farm) *FarmCreatedEvent {
	return &FarmCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFarmCreated, "Farm", f.ID, f.ID),
		Name:            f.Name,
		Code:            f.Code,
	}
}
