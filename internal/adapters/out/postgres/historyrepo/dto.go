// Package historyrepo stores the append-only status history of parcels.
package historyrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// HistoryEntryDTO is a row of parcel_history. Seq breaks ties between
// entries written within the same clock tick.
type HistoryEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(50);not null"`
	ChangedAt time.Time `gorm:"not null"`
	Comment   string    `gorm:"type:varchar(255)"`
}

func (HistoryEntryDTO) TableName() string {
	return "parcel_history"
}

func fromDomain(entry *parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        entry.ID().Bytes(),
		ParcelID:  entry.ParcelID().Bytes(),
		Status:    entry.Status(),
		ChangedAt: entry.ChangedAt(),
		Comment:   entry.Comment(),
	}
}

func toDomain(dto HistoryEntryDTO) (*parcel.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreHistoryEntry(id, parcelID, dto.Status, dto.ChangedAt, dto.Comment)
}
