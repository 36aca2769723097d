// Package recipientrepo persists recipients. Email is optional and not unique.
package recipientrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"

	"github.com/google/uuid"
)

type RecipientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastName  string    `gorm:"type:varchar(100);not null;index"`
	FirstName string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(150)"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

func fromDomain(r *party.Recipient) RecipientDTO {
	c := r.Contact()
	return RecipientDTO{
		ID:        r.ID().Bytes(),
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func toDomain(dto RecipientDTO) (*party.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.NewRecipient(id, party.Contact{
		LastName:  dto.LastName,
		FirstName: dto.FirstName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Address:   dto.Address,
	})
}
