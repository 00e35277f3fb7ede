// Package jobs provides scheduled background tasks for the fleet trip service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for trip dispatching.
//
// # Available Jobs
//
// 1. OverdueTripWatchJob - Runs every minute to flag in-progress trips that
// have run past their planned window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOverdueTripsHandler, logger)
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
// The watch job uses the "@every 1m" schedule. A trip's planned window is its
// scheduled date plus its estimated duration in minutes; minute resolution is
// enough for dispatcher alerting.
//
// # Error Handling
//
// - The watch job is read-only and logs query failures without retrying
// - Failed job starts will stop any already running jobs
package jobs
