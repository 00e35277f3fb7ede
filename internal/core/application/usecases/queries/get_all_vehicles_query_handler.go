package queries

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves vehicle rows from the database.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle fleet queries.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles, ordered by plate
// number. The regular driver's name is resolved when one is assigned.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.plate_number,
			v.type,
			v.capacity,
			v.driver_id,
			d.name,
			v.status
		FROM vehicles v
		LEFT JOIN drivers d ON d.id = v.driver_id
		ORDER BY v.plate_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllVehiclesQueryResponse
		var vehicleID uuid.UUID
		var driverID *uuid.UUID
		var driverName *string

		err = rows.Scan(
			&vehicleID,
			&row.PlateNumber,
			&row.Type,
			&row.Capacity,
			&driverID,
			&driverName,
			&row.Status,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if driverID != nil {
			id, err := kernel.UUIDFromBytes((*driverID)[:])
			if err != nil {
				return nil, err
			}
			row.DriverID = &id
		}
		row.DriverName = driverName

		vehicles = append(vehicles, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
