// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleettrip/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// MillRepoFactory provides access to the mill repository within a transaction.
	MillRepoFactory interface {
		MillRepository() ports.MillRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// MillUoW manages transactions for mill-only operations.
	MillUoW interface {
		TxManager
		MillRepoFactory
	}

	// MillUoWFactory creates new mill unit of work instances.
	MillUoWFactory interface {
		Create() MillUoW
	}

	// UoW manages transactions across trip, driver, vehicle, and mill aggregates.
	// Used for commands that coordinate changes between multiple aggregate types,
	// primarily trip lifecycle operations that also move resource statuses.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tripRepo := uow.TripRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
		MillRepoFactory
		TripRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
