package feed

import (
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FeedType classifies feeds within a farm (hay, silage, concentrate).
// Names are unique per farm.
type FeedType struct {
	shared.FarmAggregateRoot
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_feed_type_farm_name,priority:2"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (FeedType) TableName() string {
	return "feed_types"
}

// NewFeedType creates a new feed type for a farm
func NewFeedType(farmID, createdBy uuid.UUID, name, description string) (*FeedType, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Feed type name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Feed type name cannot exceed 255 characters")
	}

	return &FeedType{
		FarmAggregateRoot: shared.NewFarmAggregateRootWithCreator(farmID, createdBy),
		Name:              name,
		Description:       description,
	}, nil
}

// Rename changes the type's name
func (t *FeedType) Rename(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Feed type name cannot be empty")
	}

	t.Name = name
	t.Description = description
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}
