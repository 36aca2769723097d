package cmd

import (
	"log/slog"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/registries"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

// ParcelViewCache is both the read-through cache of GetParcel and the
// invalidator the mutating commands call after commit.
type ParcelViewCache interface {
	queries.ParcelViewCache
	commands.ParcelCacheInvalidator
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ParcelViewCache
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	cache ParcelViewCache,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) registryUoWFactory() registries.UoWFactory {
	return FuncRegistryUoWFactory(func() registries.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.parcelUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory(), c.cache)
}

func (c *CompositionRoot) CreateAddParcelProductCommandHandler() commands.AddParcelProductCommandHandler {
	return commands.NewAddParcelProductCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	return queries.NewGetParcelHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelProductsQueryHandler() queries.GetParcelProductsQueryHandler {
	return queries.NewGetParcelProductsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case behind the REST surface.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	uows := c.registryUoWFactory()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateParcel:       c.CreateCreateParcelCommandHandler(),
		AssignCourier:      c.CreateAssignCourierCommandHandler(),
		UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
		DeleteParcel:       c.CreateDeleteParcelCommandHandler(),
		AddParcelProduct:   c.CreateAddParcelProductCommandHandler(),
		GetParcel:          c.CreateGetParcelQueryHandler(),
		GetAllParcels:      c.CreateGetAllParcelsQueryHandler(),
		GetParcelHistory:   c.CreateGetParcelHistoryQueryHandler(),
		GetParcelProducts:  c.CreateGetParcelProductsQueryHandler(),
		Senders:            registries.NewSenderRegistry(uows),
		Recipients:         registries.NewRecipientRegistry(uows),
		Couriers:           registries.NewCourierRegistry(uows),
		Zones:              registries.NewZoneRegistry(uows),
		Products:           registries.NewProductRegistry(uows),
	})
}

// CreateJobManager builds the scheduled jobs from the outbox settings.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayCmd, err := commands.NewRelayOutboxCommand(c.config.OutboxBatchSize, c.config.OutboxMaxAttempts)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		relayCmd,
		c.config.OutboxRelaySchedule,
		c.logger,
	), nil
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncRegistryUoWFactory func() registries.UoW

func (f FuncRegistryUoWFactory) Create() registries.UoW {
	return f()
}
