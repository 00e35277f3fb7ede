// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/pkg/guard"
)

var ErrGetAllTripsQueryIsNotConstructed = errors.New(
	"GetAllTripsQuery must be created via NewGetAllTripsQuery constructor",
)

// GetAllTripsQuery retrieves the trip list, optionally filtered by
// lifecycle status. Returns rows with resource names, the planned total,
// and the collection line items, ready for display.
//
// Example:
//
//	query, _ := queries.NewGetAllTripsQuery(nil)
//	handler := queries.NewGetAllTripsQueryHandler(db)
//
//	trips, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve trips: %w", err)
//	}
type GetAllTripsQuery struct {
	status *trip.Status

	guard guard.ConstructorGuard
}

// NewGetAllTripsQuery creates a query to retrieve trips.
// A nil status returns every trip; a non-nil status must be a valid
// lifecycle state and restricts the result to it.
func NewGetAllTripsQuery(status *trip.Status) (GetAllTripsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllTripsQuery{}, err
		}
	}

	return GetAllTripsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllTripsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTripsQueryIsNotConstructed)
}

// Status returns the optional status filter, or nil for all trips.
func (q GetAllTripsQuery) Status() *trip.Status {
	return q.status
}

// GetAllTripsQueryResponse is one row of the trip list read model.
type GetAllTripsQueryResponse struct {
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
