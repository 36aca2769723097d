// Package senderrepo persists senders. Email is unique across senders.
package senderrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"

	"github.com/google/uuid"
)

type SenderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastName  string    `gorm:"type:varchar(100);not null;index"`
	FirstName string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
}

func (SenderDTO) TableName() string {
	return "senders"
}

func fromDomain(s *party.Sender) SenderDTO {
	c := s.Contact()
	return SenderDTO{
		ID:        s.ID().Bytes(),
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func toDomain(dto SenderDTO) (*party.Sender, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return party.NewSender(id, party.Contact{
		LastName:  dto.LastName,
		FirstName: dto.FirstName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Address:   dto.Address,
	})
}
