package jobs

import (
	"context"
	"log/slog"

	"railmeals/internal/core/application/usecases/commands"
	"railmeals/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OrderSyncJob keeps the local order queue in step with the aggregator feed.
// Each tick fetches the outlet's pushed orders and stores the unseen ones.
type OrderSyncJob struct {
	handler  commands.SyncPushedOrdersCommandHandler
	outletID kernel.UUID
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderSyncJob creates the feed synchronisation job for one outlet.
// The schedule is a six-field cron expression with a seconds column.
func NewOrderSyncJob(
	handler commands.SyncPushedOrdersCommandHandler,
	outletID kernel.UUID,
	schedule string,
	logger *slog.Logger,
) *OrderSyncJob {
	return &OrderSyncJob{
		handler:  handler,
		outletID: outletID,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_sync_job"),
	}
}

// Start schedules the synchronisation job.
func (j *OrderSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the synchronisation job.
func (j *OrderSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}

func (j *OrderSyncJob) run(ctx context.Context) {
	cmd, err := commands.NewSyncPushedOrdersCommand(j.outletID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order sync job misconfigured", "error", err)
		return
	}

	added, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order sync job failed", "error", err)
		return
	}

	if added > 0 {
		j.logger.InfoContext(ctx, "New pushed orders accepted into the queue", "count", added)
	}
}
