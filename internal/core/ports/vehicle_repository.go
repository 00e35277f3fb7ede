package ports

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and its plate number unique.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// Delete removes a vehicle from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
