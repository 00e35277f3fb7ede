package commands

import (
	"context"

	"fleettrip/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// New vehicles are persisted in the idle status, ready for trip assignment.
// Plate number uniqueness is enforced by storage; a duplicate surfaces as a
// resource conflict from the repository.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration operations.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Uses a transaction to ensure the vehicle is properly persisted or rolled back on error.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.PlateNumber(),
		cmd.VehicleType(),
		cmd.Capacity(),
		cmd.DriverID(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
