package registries

import (
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"
)

type SenderRegistry struct {
	registry[*party.Sender, party.Contact]
}

func NewSenderRegistry(uowFactory UoWFactory) SenderRegistry {
	return SenderRegistry{registry[*party.Sender, party.Contact]{
		uowFactory: uowFactory,
		repo:       func(uow UoW) store[*party.Sender] { return uow.SenderRepository() },
		build:      party.NewSender,
		apply:      (*party.Sender).Update,
	}}
}

type RecipientRegistry struct {
	registry[*party.Recipient, party.Contact]
}

func NewRecipientRegistry(uowFactory UoWFactory) RecipientRegistry {
	return RecipientRegistry{registry[*party.Recipient, party.Contact]{
		uowFactory: uowFactory,
		repo:       func(uow UoW) store[*party.Recipient] { return uow.RecipientRepository() },
		build:      party.NewRecipient,
		apply:      (*party.Recipient).Update,
	}}
}

type CourierRegistry struct {
	registry[*courier.Courier, courier.Profile]
}

func NewCourierRegistry(uowFactory UoWFactory) CourierRegistry {
	return CourierRegistry{registry[*courier.Courier, courier.Profile]{
		uowFactory: uowFactory,
		repo:       func(uow UoW) store[*courier.Courier] { return uow.CourierRepository() },
		build:      courier.NewCourier,
		apply:      (*courier.Courier).Update,
	}}
}

// ZoneDetails are the editable attributes of a zone.
type ZoneDetails struct {
	Name       string
	PostalCode string
}

type ZoneRegistry struct {
	registry[*zone.Zone, ZoneDetails]
}

func NewZoneRegistry(uowFactory UoWFactory) ZoneRegistry {
	return ZoneRegistry{registry[*zone.Zone, ZoneDetails]{
		uowFactory: uowFactory,
		repo:       func(uow UoW) store[*zone.Zone] { return uow.ZoneRepository() },
		build: func(id kernel.UUID, d ZoneDetails) (*zone.Zone, error) {
			return zone.NewZone(id, d.Name, d.PostalCode)
		},
		apply: func(z *zone.Zone, d ZoneDetails) error {
			return z.Update(d.Name, d.PostalCode)
		},
	}}
}

type ProductRegistry struct {
	registry[*product.Product, product.Attributes]
}

func NewProductRegistry(uowFactory UoWFactory) ProductRegistry {
	return ProductRegistry{registry[*product.Product, product.Attributes]{
		uowFactory: uowFactory,
		repo:       func(uow UoW) store[*product.Product] { return uow.ProductRepository() },
		build:      product.NewProduct,
		apply:      (*product.Product).Update,
	}}
}
