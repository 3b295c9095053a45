package cmd

import (
	"fmt"
	"log/slog"

	vendorhttp "railmeals/internal/adapters/in/http"
	"railmeals/internal/adapters/out/postgres"
	"railmeals/internal/adapters/out/traininfo"
	"railmeals/internal/adapters/out/upstream"
	"railmeals/internal/core/application/usecases/commands"
	"railmeals/internal/core/application/usecases/queries"
	"railmeals/internal/core/domain/model/kernel"
	"railmeals/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. All shared singletons
// (transition gate, upstream client) live here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	outletID kernel.UUID
	gate     *commands.TransitionGate
	upstream *upstream.Client
	trains   *traininfo.Client

	orderSyncSchedule      string
	documentExpirySchedule string
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	outletID, err := kernel.UUIDFromString(config.OutletID)
	if err != nil {
		return nil, fmt.Errorf("OUTLET_ID: %w", err)
	}

	upstreamClient, err := upstream.NewClient(config.UpstreamBaseURL, config.UpstreamAPIKey)
	if err != nil {
		return nil, fmt.Errorf("upstream client: %w", err)
	}

	trainClient, err := traininfo.NewClient(config.TrainInfoBaseURL)
	if err != nil {
		return nil, fmt.Errorf("train info client: %w", err)
	}

	return &CompositionRoot{
		gormDB:                 gormDB,
		uowFactory:             *postgres.NewGormUnitOfWorkFactory(gormDB),
		outletID:               outletID,
		gate:                   commands.NewTransitionGate(),
		upstream:               upstreamClient,
		trains:                 trainClient,
		orderSyncSchedule:      config.OrderSyncSchedule,
		documentExpirySchedule: config.DocumentExpirySchedule,
	}, nil
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.upstream, c.gate)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.upstream, c.gate)
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	var f commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryPersonCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncPushedOrdersCommandHandler() commands.SyncPushedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncPushedOrdersCommandHandler(f, c.upstream)
}

func (c *CompositionRoot) CreateGetPushedOrdersQueryHandler() queries.GetPushedOrdersQueryHandler {
	return queries.NewGetPushedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryRosterQueryHandler() queries.GetDeliveryRosterQueryHandler {
	return queries.NewGetDeliveryRosterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueSummaryQueryHandler() queries.GetRevenueSummaryQueryHandler {
	return queries.NewGetRevenueSummaryQueryHandler(c.gormDB)
}

// CreateServer assembles the dashboard API server with every handler wired.
func (c *CompositionRoot) CreateServer() *vendorhttp.Server {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return vendorhttp.NewServer(
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignDeliveryCommandHandler(),
		c.CreateCreateDeliveryPersonCommandHandler(),
		c.CreateGetPushedOrdersQueryHandler(),
		c.CreateGetDeliveryRosterQueryHandler(),
		c.CreateGetRevenueSummaryQueryHandler(),
		f,
		c.trains,
	)
}

// CreateJobManager assembles the background jobs for this outlet.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	var rosterFactory commands.RosterUoWFactory = FuncRosterUoWFactory(func() commands.RosterUoW {
		return c.uowFactory.Create()
	})

	syncJob := jobs.NewOrderSyncJob(
		c.CreateSyncPushedOrdersCommandHandler(), c.outletID, c.orderSyncSchedule, logger)
	expiryJob := jobs.NewDocumentExpiryJob(rosterFactory, c.documentExpirySchedule, logger)

	return jobs.NewJobManager(syncJob, expiryJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRosterUoWFactory func() commands.RosterUoW

func (f FuncRosterUoWFactory) Create() commands.RosterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
