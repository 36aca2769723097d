// Package postgres provides the GORM-based Unit of Work and schema setup.
//
// A unit of work binds every repository it hands out to one transaction and
// records which aggregates were changed. On Commit the tracked history
// entries and parcel removals are written to the outbox table inside that
// same transaction, so an event exists if and only if its change does.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	entry, err := p.ChangeStatus(parcel.Delivered, "", time.Now())
//	if err = uow.ParcelRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"time"

	"parceltrack/internal/adapters/out/postgres/courierrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/outboxrepo"
	"parceltrack/internal/adapters/out/postgres/parcelproductrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/productrepo"
	"parceltrack/internal/adapters/out/postgres/recipientrepo"
	"parceltrack/internal/adapters/out/postgres/senderrepo"
	"parceltrack/internal/adapters/out/postgres/zonerepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate changed during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out a fresh unit of work per command.
// The factory itself holds no transaction state and can be shared by every
// handler and background job of the process.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	parcelUoWs := cmd.FuncParcelUoWFactory(func() commands.ParcelUoW {
//	    return factory.CreateGorm()
//	})
//	handler := commands.NewCreateParcelCommandHandler(parcelUoWs)
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormUnitOfWorkFactory creates a factory over an open GORM connection.
// Every unit of work it creates starts its transaction on that connection
// and stamps outbox messages with the wall clock.
//
// Example:
//
//	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DriverName: "pgx", DSN: dsn}), &gorm.Config{})
//	if err != nil {
//	    return fmt.Errorf("open database: %w", err)
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, now: time.Now}
}

// Create returns a new unit of work with no open transaction and nothing
// tracked. Instances are independent, so concurrent commands never share
// a transaction.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ZoneRepository().Add(ctx, z); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete type, which also satisfies the narrower
// unit-of-work interfaces the command handlers depend on.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		now:               f.now,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction. It is not safe for
// concurrent use; each goroutine needs its own instance.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	now               func() time.Time
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
// Repositories obtained before Begin run on the plain connection, so fetch
// them after it.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the outbox messages for the tracked changes, then commits.
// If the outbox write fails the transaction stays open for Rollback.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.recordEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction and everything tracked in it.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which is
// what a deferred Rollback sees after a successful Commit and may ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// conn returns the open transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ParcelRepository and HistoryRepository report their writes back to the
// unit of work, which turns them into outbox messages at Commit. The other
// repositories only share the transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ParcelProductRepository() ports.ParcelProductRepository {
	return parcelproductrepo.NewGormParcelProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) SenderRepository() ports.SenderRepository {
	return senderrepo.NewGormSenderRepository(uow.conn())
}

func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.conn())
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

func (uow *GormUnitOfWork) ZoneRepository() ports.ZoneRepository {
	return zonerepo.NewGormZoneRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a change made through one of the repositories.
// Only changes that map to a parcel event produce an outbox message.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
