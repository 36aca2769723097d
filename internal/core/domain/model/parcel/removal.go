package parcel

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
)

// Removal records that a parcel, its history and its product lines were deleted.
type Removal struct {
	ParcelID   kernel.UUID
	LastStatus Status
	RemovedAt  time.Time
}
