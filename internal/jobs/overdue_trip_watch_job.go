package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleettrip/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueTripWatchJob periodically flags in-progress trips that have run past
// their planned window (scheduled date plus estimated duration). The job is
// read-only: it surfaces overdue trips for dispatcher attention and never
// touches trip lifecycle state.
type OverdueTripWatchJob struct {
	handler queries.GetOverdueTripsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueTripWatchJob creates a job that checks for overdue trips every minute.
func NewOverdueTripWatchJob(handler queries.GetOverdueTripsQueryHandler, logger *slog.Logger) *OverdueTripWatchJob {
	return &OverdueTripWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_trip_watch_job"),
	}
}

// Start begins the overdue trip watch, running every minute.
func (j *OverdueTripWatchJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueTripsQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue trip watch failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue trip watch failed", "error", handleErr)
			return
		}

		for _, t := range overdue {
			j.logger.WarnContext(ctx, "Trip is overdue",
				"tripID", t.ID.String(),
				"driver", t.DriverName,
				"plateNumber", t.PlateNumber,
				"scheduledDate", t.ScheduledDate,
				"estimatedDuration", t.EstimatedDuration,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue trip watch job started (running every minute)")
	return nil
}

// Stop stops the overdue trip watch job.
func (j *OverdueTripWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue trip watch job stopped")
}
