package queries

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueTripsQueryHandler retrieves overdue in-progress trips from the database.
type GetOverdueTripsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueTripsQueryHandler creates a handler for overdue trip queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueTripsQueryHandler(db *gorm.DB) GetOverdueTripsQueryHandler {
	return GetOverdueTripsQueryHandler{db: db}
}

// Handle executes the query to retrieve overdue trips, oldest first.
// A trip is overdue when it is in progress and its scheduled date plus
// estimated duration lies before the reference time.
func (h GetOverdueTripsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueTripsQuery,
) ([]GetOverdueTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trips := make([]GetOverdueTripsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			d.name,
			v.plate_number,
			t.scheduled_date,
			t.estimated_duration
		FROM trips t
		JOIN drivers d ON d.id = t.driver_id
		JOIN vehicles v ON v.id = t.vehicle_id
		WHERE t.status = ?
		  AND t.scheduled_date + make_interval(mins => t.estimated_duration) < ?
		ORDER BY t.scheduled_date
	`, trip.InProgress.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOverdueTripsQueryResponse
		var tripID uuid.UUID

		err = rows.Scan(
			&tripID,
			&row.DriverName,
			&row.PlateNumber,
			&row.ScheduledDate,
			&row.EstimatedDuration,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(tripID[:]); err != nil {
			return nil, err
		}

		trips = append(trips, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
