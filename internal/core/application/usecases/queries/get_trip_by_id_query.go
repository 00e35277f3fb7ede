package queries

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrGetTripByIDQueryIsNotConstructed = errors.New(
	"GetTripByIDQuery must be created via NewGetTripByIDQuery constructor",
)

// GetTripByIDQuery retrieves one trip with its collection line items.
type GetTripByIDQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripByIDQuery creates a query for a single trip.
func NewGetTripByIDQuery(tripID kernel.UUID) (GetTripByIDQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripByIDQuery{}, err
	}

	return GetTripByIDQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetTripByIDQueryIsNotConstructed)
}

// TripID returns the identifier of the trip to retrieve.
func (q GetTripByIDQuery) TripID() kernel.UUID {
	return q.tripID
}

// TripCollectionResponse is one line item in the trip detail read model.
type TripCollectionResponse struct {
	ID        kernel.UUID
	MillID    kernel.UUID
	MillName  string
	Collected float64
}

// GetTripByIDQueryResponse is the trip detail read model.
type GetTripByIDQueryResponse struct {
	ID                kernel.UUID
	VehicleID         kernel.UUID
	PlateNumber       string
	DriverID          kernel.UUID
	DriverName        string
	ScheduledDate     time.Time
	Status            string
	EstimatedDuration int
	PlannedTotal      float64
	Collections       []TripCollectionResponse
}
