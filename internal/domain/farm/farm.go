package farm

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Farm is the tenant root of the system. Every other record is scoped to
// exactly one farm.
type Farm struct {
	shared.BaseAggregateRoot
	Name        string    `gorm:"type:varchar(255);not null"`
	Code        string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Address     string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Coordinates string    `gorm:"type:varchar(255)"`
	Size        string    `gorm:"type:varchar(255)"`
	SizeUnit    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:varchar(255)"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Farm) TableName() string {
	return "farms"
}

// NewFarm creates a new farm owned by the given user. The farm code is
// generated from the first letter of the name plus a random 4-digit suffix,
// matching the legacy numbering scheme.
func NewFarm(ownerID uuid.UUID, name, address, phone, coordinates, size, sizeUnit, description string) (*Farm, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Farm name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Farm name cannot exceed 255 characters")
	}

	f := &Farm{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              generateFarmCode(name),
		Address:           address,
		Phone:             phone,
		Coordinates:       coordinates,
		Size:              size,
		SizeUnit:          sizeUnit,
		Description:       description,
		OwnerID:           ownerID,
	}

	f.AddDomainEvent(NewFarmCreatedEvent(f))

	return f, nil
}

// Update applies editable fields. The code and owner are immutable.
func (f *Farm) Update(name, address, phone, coordinates, size, sizeUnit, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Farm name cannot be empty")
	}

	f.Name = name
	f.Address = address
	f.Phone = phone
	f.Coordinates = coordinates
	f.Size = size
	f.SizeUnit = sizeUnit
	f.Description = description
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// generateFarmCode builds codes like "GF4821" for "Green Acres"
func generateFarmCode(name string) string {
	first := strings.ToUpper(name[:1])
	return fmt.Sprintf("%sF%04d", first, rand.Intn(10000))
}
