// Package outboxrepo stores parcel events awaiting relay to the broker.
package outboxrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"type:varchar(100);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:bytea;not null"`
	Status      string     `gorm:"type:varchar(20);not null;index:idx_outbox_pending,priority:1"`
	Attempts    int        `gorm:"not null"`
	LastError   string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_outbox_pending,priority:2"`
	ProcessedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		EventType:   m.EventType(),
		AggregateID: m.AggregateID().Bytes(),
		Payload:     m.Payload(),
		Status:      string(m.Status()),
		Attempts:    m.Attempts(),
		LastError:   m.LastError(),
		CreatedAt:   m.CreatedAt(),
		ProcessedAt: m.ProcessedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		dto.EventType,
		aggregateID,
		dto.Payload,
		outbox.Status(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
