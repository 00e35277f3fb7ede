package queries

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves driver rows from the database.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver roster queries.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers, ordered by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, license_number, phone_number, status
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllDriversQueryResponse
		var driverID uuid.UUID

		err = rows.Scan(
			&driverID,
			&row.Name,
			&row.LicenseNumber,
			&row.PhoneNumber,
			&row.Status,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}

		drivers = append(drivers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
