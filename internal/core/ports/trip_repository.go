package ports

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
// Trips are stored together with their collection line items; the line items
// are never persisted independently of their owning trip.
type TripRepository interface {
	// Add persists a new trip aggregate with all its collections.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	// The stored collection set is replaced wholesale by the aggregate's
	// current set.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier,
	// including all of its collections.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetActiveByDriver retrieves the driver's most recent trip in
	// scheduled or in_progress status, ordered by scheduled date descending.
	// Returns an ObjectNotFoundError when the driver has no active trip.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error)

	// GetActiveByVehicle retrieves the vehicle's most recent trip in
	// scheduled or in_progress status, ordered by scheduled date descending.
	// Returns an ObjectNotFoundError when the vehicle has no active trip.
	GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*trip.Trip, error)

	// Delete removes a trip and its collections from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
