// Package queries contains read operations. Handlers read straight through
// *gorm.DB with hand-written SQL and return read models shaped for callers,
// bypassing the aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ParcelView is the projection returned for a parcel. Sender and zone names
// are empty when the referenced parent no longer exists.
type ParcelView struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Weight          float64   `json:"weight"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	DestinationCity string    `json:"destinationCity"`
	CreatedAt       time.Time `json:"createdAt"`
	CourierID       *string   `json:"courierId"`
	SenderName      string    `json:"senderName"`
	ZoneName        string    `json:"zoneName"`
}

// CacheStamp is the invalidation generation of a parcel entry at the time
// it was read. Zero means the entry was never invalidated.
type CacheStamp int64

// ParcelViewCache is a best-effort store of parcel views. Misses and
// failures are indistinguishable to the caller.
//
// Get returns the stamp current at the time of the read even on a miss.
// Set stores the view only while that stamp is still current, so a view
// loaded before an invalidation never replaces the newer state.
type ParcelViewCache interface {
	Get(ctx context.Context, parcelID kernel.UUID) (ParcelView, CacheStamp, bool)
	Set(ctx context.Context, view ParcelView, stamp CacheStamp)
}

const parcelViewSelect = `
	SELECT
		p.id,
		p.description,
		p.weight,
		p.status,
		p.priority,
		p.destination_city,
		p.created_at,
		p.courier_id,
		TRIM(CONCAT_WS(' ', s.first_name, s.last_name)) AS sender_name,
		COALESCE(z.name, '') AS zone_name
	FROM parcels p
	LEFT JOIN senders s ON s.id = p.sender_id
	LEFT JOIN zones z ON z.id = p.zone_id
`

func scanParcelView(rows *sql.Rows) (ParcelView, error) {
	var (
		view      ParcelView
		id        uuid.UUID
		courierID uuid.NullUUID
	)

	err := rows.Scan(
		&id,
		&view.Description,
		&view.Weight,
		&view.Status,
		&view.Priority,
		&view.DestinationCity,
		&view.CreatedAt,
		&courierID,
		&view.SenderName,
		&view.ZoneName,
	)
	if err != nil {
		return ParcelView{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelView{}, err
	}
	view.ID = parcelID.String()
	view.CreatedAt = view.CreatedAt.UTC()

	if courierID.Valid {
		s := courierID.UUID.String()
		view.CourierID = &s
	}

	return view, nil
}
