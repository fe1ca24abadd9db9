// Package jobs provides scheduled background tasks for the group ordering
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// GroupingJob - runs on a configurable schedule to batch pending orders into
// group orders, one per restaurant with pending demand.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(groupPendingOrdersHandler, "*/5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed grouping run is logged and retried on the next tick; partial runs
// are safe because each restaurant is grouped in its own transaction and
// already-grouped orders are excluded from future runs.
package jobs
