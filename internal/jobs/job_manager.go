package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSyncJob      *OrderSyncJob
	documentExpiryJob *DocumentExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orderSyncJob *OrderSyncJob, documentExpiryJob *DocumentExpiryJob) *JobManager {
	return &JobManager{
		orderSyncJob:      orderSyncJob,
		documentExpiryJob: documentExpiryJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	if err := jm.documentExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderSyncJob.Stop()
		return fmt.Errorf("failed to start document expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSyncJob.Stop()
	jm.documentExpiryJob.Stop()
}
