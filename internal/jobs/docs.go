// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LoadReconciliationJob - Periodically cross-checks stored capacity loads
// against the sum of outstanding placements and reports any drift.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconciliationJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job is strictly read-only. It never corrects drift on
// its own; detected violations are logged at Error level so operators can
// investigate how the invariant was broken.
package jobs
