package queries

import (
	"context"
	"database/sql"
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripByIDQueryHandler retrieves one trip with its collections from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTripByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetTripByIDQueryHandler creates a handler for trip detail queries.
// Requires a GORM database connection for query execution.
func NewGetTripByIDQueryHandler(db *gorm.DB) GetTripByIDQueryHandler {
	return GetTripByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one trip and its line items.
// Returns an ObjectNotFoundError when the trip does not exist.
func (h GetTripByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTripByIDQuery,
) (GetTripByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTripByIDQueryResponse{}, err
	}

	var response GetTripByIDQueryResponse
	var tripID, vehicleID, driverID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.vehicle_id,
			v.plate_number,
			t.driver_id,
			d.name,
			t.scheduled_date,
			t.status,
			t.estimated_duration
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN drivers d ON d.id = t.driver_id
		WHERE t.id = ?
	`, query.TripID().String()).Row()

	err := row.Scan(
		&tripID,
		&vehicleID,
		&response.PlateNumber,
		&driverID,
		&response.DriverName,
		&response.ScheduledDate,
		&response.Status,
		&response.EstimatedDuration,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTripByIDQueryResponse{}, errs.NewObjectNotFoundError("tripID", query.TripID())
	}
	if err != nil {
		return GetTripByIDQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(tripID[:]); err != nil {
		return GetTripByIDQueryResponse{}, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetTripByIDQueryResponse{}, err
	}
	if response.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return GetTripByIDQueryResponse{}, err
	}

	collections, err := h.loadCollections(ctx, query.TripID())
	if err != nil {
		return GetTripByIDQueryResponse{}, err
	}
	response.Collections = collections

	for _, c := range collections {
		response.PlannedTotal += c.Collected
	}

	return response, nil
}

func (h GetTripByIDQueryHandler) loadCollections(
	ctx context.Context,
	tripID kernel.UUID,
) ([]TripCollectionResponse, error) {
	collections := make([]TripCollectionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.mill_id,
			COALESCE(m.name, ''),
			c.collected
		FROM collections c
		LEFT JOIN mills m ON m.id = c.mill_id
		WHERE c.trip_id = ?
		ORDER BY m.name
	`, tripID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var collection TripCollectionResponse
		var collectionID, millID uuid.UUID

		err = rows.Scan(
			&collectionID,
			&millID,
			&collection.MillName,
			&collection.Collected,
		)
		if err != nil {
			return nil, err
		}

		if collection.ID, err = kernel.UUIDFromBytes(collectionID[:]); err != nil {
			return nil, err
		}
		if collection.MillID, err = kernel.UUIDFromBytes(millID[:]); err != nil {
			return nil, err
		}

		collections = append(collections, collection)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return collections, nil
}
