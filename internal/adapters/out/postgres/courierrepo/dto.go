// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
package courierrepo

import (
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
// AssignedZone is free text, not a reference to the zones table.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastName     string    `gorm:"type:varchar(100);not null;index"`
	FirstName    string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Vehicle      string    `gorm:"type:varchar(50);not null"`
	AssignedZone string    `gorm:"type:varchar(100)"`
}

// TableName overrides GORM's default "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	profile := c.Profile()
	return CourierDTO{
		ID:           c.ID().Bytes(),
		LastName:     profile.LastName,
		FirstName:    profile.FirstName,
		Phone:        profile.Phone,
		Vehicle:      profile.Vehicle,
		AssignedZone: profile.AssignedZone,
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(id, courier.Profile{
		LastName:     dto.LastName,
		FirstName:    dto.FirstName,
		Phone:        dto.Phone,
		Vehicle:      dto.Vehicle,
		AssignedZone: dto.AssignedZone,
	})
}
