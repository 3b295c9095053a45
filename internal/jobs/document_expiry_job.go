package jobs

import (
	"context"
	"log/slog"
	"time"

	"railmeals/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// documentExpiryHorizon is how far ahead the sweep looks for expiring
// identity documents.
const documentExpiryHorizon = 30 * 24 * time.Hour

// DocumentExpiryJob is a daily compliance sweep over the delivery roster.
// Delivery people whose identity documents expire within the horizon are
// logged so the vendor can renew them before the person becomes ineligible.
type DocumentExpiryJob struct {
	uowFactory commands.RosterUoWFactory
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDocumentExpiryJob creates the roster compliance sweep.
func NewDocumentExpiryJob(
	uowFactory commands.RosterUoWFactory,
	schedule string,
	logger *slog.Logger,
) *DocumentExpiryJob {
	return &DocumentExpiryJob{
		uowFactory: uowFactory,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "document_expiry_job"),
	}
}

// Start schedules the compliance sweep.
func (j *DocumentExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document expiry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the compliance sweep.
func (j *DocumentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document expiry job stopped")
}

func (j *DocumentExpiryJob) run(ctx context.Context) {
	deadline := time.Now().Add(documentExpiryHorizon)

	// Read-only sweep, no transaction needed.
	repo := j.uowFactory.Create().DeliveryPersonRepository()

	expiring, err := repo.GetAllWithDocumentsExpiringBefore(ctx, deadline)
	if err != nil {
		j.logger.ErrorContext(ctx, "Document expiry sweep failed", "error", err)
		return
	}

	for _, person := range expiring {
		j.logger.WarnContext(ctx, "Delivery person documents expiring",
			"delivery_person_id", person.ID().String(),
			"name", person.Name(),
			"document_expiry", person.DocumentExpiry(),
		)
	}
}
