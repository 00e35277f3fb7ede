package jobs

import (
	"fmt"
	"log/slog"

	"fleettrip/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueTripWatchJob *OverdueTripWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getOverdueTripsHandler queries.GetOverdueTripsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueTripWatchJob: NewOverdueTripWatchJob(getOverdueTripsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueTripWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue trip watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueTripWatchJob.Stop()
}
