// Package jobs provides scheduled background tasks for the vendor dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the dashboard needs.
//
// # Available Jobs
//
// 1. OrderSyncJob - Periodically pulls the outlet's pushed orders from the
// aggregator feed and stores the ones not seen before.
// 2. DocumentExpiryJob - Daily sweep that flags delivery people whose
// identity documents expire within the compliance horizon.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderSyncJob, documentExpiryJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and retry on the next tick; a failed run never
// stops the schedule.
// - Failed job starts will stop any already running jobs.
package jobs
