package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
)

// The parent registries share one shape. Get is the fetch-or-fail lookup the
// parcel workflow relies on: it returns the live entity or an
// ObjectNotFoundError whose ParamName is the entity type.

type SenderRepository interface {
	Add(ctx context.Context, sender *party.Sender) error
	Update(ctx context.Context, sender *party.Sender) error
	Get(ctx context.Context, id kernel.UUID) (*party.Sender, error)
	List(ctx context.Context) ([]*party.Sender, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type RecipientRepository interface {
	Add(ctx context.Context, recipient *party.Recipient) error
	Update(ctx context.Context, recipient *party.Recipient) error
	Get(ctx context.Context, id kernel.UUID) (*party.Recipient, error)
	List(ctx context.Context) ([]*party.Recipient, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type CourierRepository interface {
	Add(ctx context.Context, courier *courier.Courier) error
	Update(ctx context.Context, courier *courier.Courier) error
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
	List(ctx context.Context) ([]*courier.Courier, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type ZoneRepository interface {
	Add(ctx context.Context, zone *zone.Zone) error
	Update(ctx context.Context, zone *zone.Zone) error
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)
	List(ctx context.Context) ([]*zone.Zone, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

type ProductRepository interface {
	Add(ctx context.Context, product *product.Product) error
	Update(ctx context.Context, product *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
