package queries

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrGetOverdueTripsQueryIsNotConstructed = errors.New(
	"GetOverdueTripsQuery must be created via NewGetOverdueTripsQuery constructor",
)

// GetOverdueTripsQuery retrieves in-progress trips that have run past their
// planned window (scheduled date plus estimated duration). Used by the
// overdue-trip watch job to flag trips needing dispatcher attention.
type GetOverdueTripsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueTripsQuery creates a query for trips overdue as of the given
// moment. The reference time must not be zero.
func NewGetOverdueTripsQuery(asOf time.Time) (GetOverdueTripsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueTripsQuery{}, errors.New("asOf is required")
	}

	return GetOverdueTripsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueTripsQueryIsNotConstructed)
}

// AsOf returns the reference time for the overdue check.
func (q GetOverdueTripsQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueTripsQueryResponse is one row of the overdue trip read model.
type GetOverdueTripsQueryResponse struct {
	ID                kernel.UUID
	DriverName        string
	PlateNumber       string
	ScheduledDate     time.Time
	EstimatedDuration int
}
