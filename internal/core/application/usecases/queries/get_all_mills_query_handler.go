package queries

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMillsQueryHandler retrieves mill rows from the database.
type GetAllMillsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMillsQueryHandler creates a handler for mill registry queries.
func NewGetAllMillsQueryHandler(db *gorm.DB) GetAllMillsQueryHandler {
	return GetAllMillsQueryHandler{db: db}
}

// Handle executes the query to retrieve all mills, ordered by name.
func (h GetAllMillsQueryHandler) Handle(
	ctx context.Context,
	query GetAllMillsQuery,
) ([]GetAllMillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	mills := make([]GetAllMillsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact_person,
			phone_number,
			avg_daily_production,
			location_lat,
			location_lng
		FROM mills
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllMillsQueryResponse
		var millID uuid.UUID

		err = rows.Scan(
			&millID,
			&row.Name,
			&row.ContactPerson,
			&row.PhoneNumber,
			&row.AvgDailyProduction,
			&row.Lat,
			&row.Lng,
		)
		if err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(millID[:]); err != nil {
			return nil, err
		}

		mills = append(mills, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mills, nil
}
