package queries

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTripsQueryHandler retrieves trip rows from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllTripsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTripsQueryHandler creates a handler for trip list queries.
// Requires a GORM database connection for query execution.
func NewGetAllTripsQueryHandler(db *gorm.DB) GetAllTripsQueryHandler {
	return GetAllTripsQueryHandler{db: db}
}

// Handle executes the query to retrieve trips, newest scheduled first.
// Each row carries the driver name, vehicle plate, the summed planned
// quantity, and the collection line items with their mill names.
func (h GetAllTripsQueryHandler) Handle(
	ctx context.Context,
	query GetAllTripsQuery,
) ([]GetAllTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			t.id,
			t.vehicle_id,
			v.plate_number,
			t.driver_id,
			d.name,
			t.scheduled_date,
			t.status,
			t.estimated_duration,
			COALESCE(SUM(c.collected), 0)
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN drivers d ON d.id = t.driver_id
		LEFT JOIN collections c ON c.trip_id = t.id
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += ` WHERE t.status = ?`
		args = append(args, query.Status().String())
	}
	sql += `
		GROUP BY t.id, t.vehicle_id, v.plate_number, t.driver_id, d.name,
			t.scheduled_date, t.status, t.estimated_duration
		ORDER BY t.scheduled_date DESC
	`

	trips := make([]GetAllTripsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllTripsQueryResponse
		var tripID, vehicleID, driverID uuid.UUID

		err = rows.Scan(
			&tripID,
			&vehicleID,
			&row.PlateNumber,
			&driverID,
			&row.DriverName,
			&row.ScheduledDate,
			&row.Status,
			&row.EstimatedDuration,
			&row.PlannedTotal,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(tripID[:]); err != nil {
			return nil, err
		}
		if row.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if row.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}

		trips = append(trips, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachCollections(ctx, trips); err != nil {
		return nil, err
	}

	return trips, nil
}

// attachCollections loads the line items for every listed trip in one
// round-trip and distributes them across the rows.
func (h GetAllTripsQueryHandler) attachCollections(
	ctx context.Context,
	trips []GetAllTripsQueryResponse,
) error {
	if len(trips) == 0 {
		return nil
	}

	tripIDs := make([]string, 0, len(trips))
	for i := range trips {
		trips[i].Collections = make([]TripCollectionResponse, 0)
		tripIDs = append(tripIDs, trips[i].ID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.trip_id,
			c.mill_id,
			COALESCE(m.name, ''),
			c.collected
		FROM collections c
		LEFT JOIN mills m ON m.id = c.mill_id
		WHERE c.trip_id IN ?
		ORDER BY m.name
	`, tripIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	byTrip := make(map[kernel.UUID]int, len(trips))
	for i := range trips {
		byTrip[trips[i].ID] = i
	}

	for rows.Next() {
		var collection TripCollectionResponse
		var collectionID, tripID, millID uuid.UUID

		err = rows.Scan(
			&collectionID,
			&tripID,
			&millID,
			&collection.MillName,
			&collection.Collected,
		)
		if err != nil {
			return err
		}

		if collection.ID, err = kernel.UUIDFromBytes(collectionID[:]); err != nil {
			return err
		}
		if collection.MillID, err = kernel.UUIDFromBytes(millID[:]); err != nil {
			return err
		}

		owner, err := kernel.UUIDFromBytes(tripID[:])
		if err != nil {
			return err
		}
		if i, ok := byTrip[owner]; ok {
			trips[i].Collections = append(trips[i].Collections, collection)
		}
	}

	return rows.Err()
}
