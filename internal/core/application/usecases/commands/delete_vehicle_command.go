package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle from the fleet.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to remove a vehicle.
func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	cmd := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to remove.
func (c DeleteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c *DeleteVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
