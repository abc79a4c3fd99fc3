// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order pipeline.
//
// # Available Jobs
//
// 1. DeliveryReconciliationJob - Runs every minute to find recorded orders
// that never received a delivery estimate and re-announce them to the
// scheduling worker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 * * * * *", once a
// minute on the minute. Orders younger than the grace period are left alone
// so the job never races the normal scheduling cascade.
package jobs
