// Package http exposes the parcel workflow and the parent registries over
// REST. Handlers translate requests into commands and queries; every error
// is returned to echo and rendered by the handler from NewErrorHandler.
package http

import (
	"context"
	"net/http"

	"parceltrack/internal/core/application/registries"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/party"
	"parceltrack/internal/core/domain/model/product"
	"parceltrack/internal/core/domain/model/zone"

	"github.com/labstack/echo/v4"
)

type (
	CreateParcelHandler interface {
		Handle(ctx context.Context, cmd commands.CreateParcelCommand) error
	}

	AssignCourierHandler interface {
		Handle(ctx context.Context, cmd commands.AssignCourierCommand) error
	}

	UpdateParcelStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateParcelStatusCommand) error
	}

	DeleteParcelHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteParcelCommand) error
	}

	AddParcelProductHandler interface {
		Handle(ctx context.Context, cmd commands.AddParcelProductCommand) error
	}

	GetParcelHandler interface {
		Handle(ctx context.Context, query queries.GetParcelQuery) (queries.ParcelView, error)
	}

	GetAllParcelsHandler interface {
		Handle(ctx context.Context, query queries.GetAllParcelsQuery) ([]queries.ParcelView, error)
	}

	GetParcelHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetParcelHistoryQuery) ([]queries.HistoryEntryView, error)
	}

	GetParcelProductsHandler interface {
		Handle(ctx context.Context, query queries.GetParcelProductsQuery) ([]queries.ProductLineView, error)
	}

	// Registry is the CRUD surface of a parent registry holding T, edited through A.
	Registry[T any, A any] interface {
		Create(ctx context.Context, attrs A) (T, error)
		Fetch(ctx context.Context, id kernel.UUID) (T, error)
		List(ctx context.Context) ([]T, error)
		Update(ctx context.Context, id kernel.UUID, attrs A) (T, error)
		Delete(ctx context.Context, id kernel.UUID) error
	}
)

// Handlers groups every use case the server dispatches to.
type Handlers struct {
	CreateParcel       CreateParcelHandler
	AssignCourier      AssignCourierHandler
	UpdateParcelStatus UpdateParcelStatusHandler
	DeleteParcel       DeleteParcelHandler
	AddParcelProduct   AddParcelProductHandler

	GetParcel         GetParcelHandler
	GetAllParcels     GetAllParcelsHandler
	GetParcelHistory  GetParcelHistoryHandler
	GetParcelProducts GetParcelProductsHandler

	Senders    Registry[*party.Sender, party.Contact]
	Recipients Registry[*party.Recipient, party.Contact]
	Couriers   Registry[*courier.Courier, courier.Profile]
	Zones      Registry[*zone.Zone, registries.ZoneDetails]
	Products   Registry[*product.Product, product.Attributes]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Register mounts every API route on g, normally the /api/v1 group.
func (s *Server) Register(g *echo.Group) {
	g.POST("/parcels", s.CreateParcel)
	g.GET("/parcels", s.GetParcels)
	g.GET("/parcels/:id", s.GetParcel)
	g.DELETE("/parcels/:id", s.DeleteParcel)
	g.PUT("/parcels/assign/:parcelId", s.AssignCourier)
	g.PUT("/parcels/status/:parcelId", s.UpdateParcelStatus)
	g.GET("/parcels/:id/history", s.GetParcelHistory)
	g.POST("/parcels/:id/products", s.AddParcelProduct)
	g.GET("/parcels/:id/products", s.GetParcelProducts)

	registerRegistry(g, "/senders", "Sender", s.h.Senders, SenderRequest.toContact, toSenderResponse)
	registerRegistry(g, "/recipients", "Recipient", s.h.Recipients, RecipientRequest.toContact, toRecipientResponse)
	registerRegistry(g, "/couriers", "Courier", s.h.Couriers, CourierRequest.toProfile, toCourierResponse)
	registerRegistry(g, "/zones", "Zone", s.h.Zones, ZoneRequest.toDetails, toZoneResponse)
	registerRegistry(g, "/products", "Product", s.h.Products, ProductRequest.toAttributes, toProductResponse)
}

// Health handles GET /health.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
