// Package commands contains the operations that change parcel state.
// Every handler follows the same shape: validate the command, open a unit
// of work, resolve what it needs through fetch-or-fail lookups, mutate, and
// commit. A failed lookup aborts the transaction with nothing written.
package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	ParcelProductRepoFactory interface {
		ParcelProductRepository() ports.ParcelProductRepository
	}

	// RegistryRepoFactory exposes the fetch-or-fail lookups of the parent registries.
	RegistryRepoFactory interface {
		SenderRepository() ports.SenderRepository
		RecipientRepository() ports.RecipientRepository
		ZoneRepository() ports.ZoneRepository
		CourierRepository() ports.CourierRepository
		ProductRepository() ports.ProductRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ParcelUoW spans a parcel, its history, its product lines and the
	// parent lookups, so that a workflow step commits or fails as a whole.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.ParcelRepository().Get(ctx, id)
	//   entry, err := p.ChangeStatus(status, comment, time.Now())
	//   err = uow.ParcelRepository().Update(ctx, p)
	//   err = uow.HistoryRepository().Append(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		ParcelProductRepoFactory
		RegistryRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// OutboxUoW is used by the relay, which only touches outbox rows.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// ParcelCacheInvalidator drops cached parcel views after a committed change.
// Implementations must not fail the command: a stale entry expires on its own.
type ParcelCacheInvalidator interface {
	Invalidate(ctx context.Context, parcelID kernel.UUID)
}
