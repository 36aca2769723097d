// Package parcelrepo persists the parcel aggregate. History entries and
// product lines live in their own tables and repositories.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the row shape of the parcels table. Parent references are
// plain columns without foreign keys: a parcel outlives a deleted parent.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Description     string     `gorm:"type:varchar(255);not null"`
	Weight          float64    `gorm:"not null"`
	DestinationCity string     `gorm:"type:varchar(100);not null"`
	Priority        string     `gorm:"type:varchar(50);not null"`
	Status          string     `gorm:"type:varchar(50);not null;index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	SenderID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ZoneID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              p.ID().Bytes(),
		Description:     p.Description(),
		Weight:          p.Weight(),
		DestinationCity: p.DestinationCity(),
		Priority:        p.Priority().String(),
		Status:          p.Status().String(),
		CreatedAt:       p.CreatedAt(),
		SenderID:        p.SenderID().Bytes(),
		RecipientID:     p.RecipientID().Bytes(),
		ZoneID:          p.ZoneID().Bytes(),
		CourierID:       courierColumn(p),
	}
}

func courierColumn(p *parcel.Parcel) *uuid.UUID {
	id := p.CourierID()
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	refs, err := referencesToDomain(dto)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return parcel.RestoreParcel(id, parcel.Details{
		Description:     dto.Description,
		Weight:          dto.Weight,
		DestinationCity: dto.DestinationCity,
		Priority:        dto.Priority,
	}, refs, status, dto.CreatedAt, courierID)
}

func referencesToDomain(dto ParcelDTO) (parcel.References, error) {
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return parcel.References{}, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return parcel.References{}, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return parcel.References{}, err
	}

	return parcel.References{
		SenderID:    senderID,
		RecipientID: recipientID,
		ZoneID:      zoneID,
	}, nil
}
