package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// FarmAggregateRoot extends BaseAggregateRoot with farm (tenant) scoping.
// Every record in the system belongs to exactly one farm.
type FarmAggregateRoot struct {
	BaseAggregateRoot
	FarmID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"` // User who created this record
}

// NewFarmAggregateRoot creates a new farm-scoped aggregate root
func NewFarmAggregateRoot(farmID uuid.UUID) FarmAggregateRoot {
	return FarmAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		FarmID:            farmID,
	}
}

// NewFarmAggregateRootWithCreator creates a new farm-scoped aggregate root with creator info
func NewFarmAggregateRootWithCreator(farmID, createdBy uuid.UUID) FarmAggregateRoot {
	return FarmAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		FarmID:            farmID,
		CreatedBy:         &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (f *FarmAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	f.CreatedBy = &userID
}

// GetCreatedBy returns the creator user ID
func (f *FarmAggregateRoot) GetCreatedBy() *uuid.UUID {
	return f.CreatedBy
}

// BelongsToFarm reports whether the aggregate is scoped to the given farm
func (f *FarmAggregateRoot) BelongsToFarm(farmID uuid.UUID) bool {
	return f.FarmID == farmID
}
