// Package ports defines the contracts between the core and its adapters.
// Repositories are bound to a UnitOfWork so that a parcel mutation and its
// history entry are written in one transaction.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository persists parcel aggregates.
type ParcelRepository interface {
	// Add stores a new parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists the mutable part of a parcel: status and courier.
	// Returns an ObjectNotFoundError when the parcel no longer exists.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get returns the parcel or an ObjectNotFoundError naming "Parcel".
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes the parcel row. History and product lines are removed
	// separately, in the same transaction, by the caller.
	Delete(ctx context.Context, removal parcel.Removal) error
}

// HistoryRepository is the append-only ledger of parcel status changes.
type HistoryRepository interface {
	Append(ctx context.Context, entry *parcel.HistoryEntry) error

	// ListForParcel returns entries newest first. An unknown parcel yields an
	// empty slice, not an error.
	ListForParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.HistoryEntry, error)

	// DeleteForParcel is only used when the owning parcel is deleted.
	DeleteForParcel(ctx context.Context, parcelID kernel.UUID) error
}

// ParcelProductRepository stores the product lines of parcels.
type ParcelProductRepository interface {
	// Save inserts the line or replaces quantity and unit price of an
	// existing line for the same parcel and product.
	Save(ctx context.Context, line *parcel.ProductLine) error

	ListForParcel(ctx context.Context, parcelID kernel.UUID) ([]*parcel.ProductLine, error)

	DeleteForParcel(ctx context.Context, parcelID kernel.UUID) error
}
