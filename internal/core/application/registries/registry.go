// Package registries manages the parent entities a parcel points at:
// senders, recipients, couriers, zones and products. Each registry offers
// plain CRUD plus Fetch, the fetch-or-fail lookup.
package registries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW exposes the parent repositories only; registries never touch parcels.
	UoW interface {
		TxManager
		SenderRepository() ports.SenderRepository
		RecipientRepository() ports.RecipientRepository
		CourierRepository() ports.CourierRepository
		ZoneRepository() ports.ZoneRepository
		ProductRepository() ports.ProductRepository
	}

	UoWFactory interface {
		Create() UoW
	}
)

// store is the shape every parent repository shares.
type store[T any] interface {
	Add(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Get(ctx context.Context, id kernel.UUID) (T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// registry implements CRUD for entity T edited through attributes A.
type registry[T any, A any] struct {
	uowFactory UoWFactory
	repo       func(UoW) store[T]
	build      func(id kernel.UUID, attrs A) (T, error)
	apply      func(entity T, attrs A) error
}

// Create validates attrs and stores a new entity under a fresh id.
func (r registry[T, A]) Create(ctx context.Context, attrs A) (T, error) {
	var zero T

	entity, err := r.build(kernel.NewUUID(), attrs)
	if err != nil {
		return zero, err
	}

	uow := r.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = r.repo(uow).Add(ctx, entity); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return entity, nil
}

// Fetch returns the entity or an ObjectNotFoundError naming its type.
func (r registry[T, A]) Fetch(ctx context.Context, id kernel.UUID) (T, error) {
	return r.repo(r.uowFactory.Create()).Get(ctx, id)
}

func (r registry[T, A]) List(ctx context.Context) ([]T, error) {
	return r.repo(r.uowFactory.Create()).List(ctx)
}

// Update replaces every editable attribute of an existing entity.
func (r registry[T, A]) Update(ctx context.Context, id kernel.UUID, attrs A) (T, error) {
	var zero T

	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := r.repo(uow)

	entity, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	if err = r.apply(entity, attrs); err != nil {
		return zero, err
	}

	if err = repo.Update(ctx, entity); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return entity, nil
}

// Delete removes the entity. Parcels that reference it are left untouched.
func (r registry[T, A]) Delete(ctx context.Context, id kernel.UUID) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := r.repo(uow).Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
