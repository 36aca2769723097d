package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command.
// Repositories obtained after Begin are bound to the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit records outbox messages for the tracked changes and commits.
	// Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Returns error if none is active.
	Rollback(ctx context.Context) error

	ParcelRepository() ParcelRepository
	HistoryRepository() HistoryRepository
	ParcelProductRepository() ParcelProductRepository
	SenderRepository() SenderRepository
	RecipientRepository() RecipientRepository
	CourierRepository() CourierRepository
	ZoneRepository() ZoneRepository
	ProductRepository() ProductRepository
	OutboxRepository() OutboxRepository
}
