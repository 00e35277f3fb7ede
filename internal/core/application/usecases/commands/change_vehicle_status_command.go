package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand represents a manual vehicle status override,
// such as sending a vehicle to maintenance or returning it to service.
type ChangeVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	status    vehicle.Status

	guard guard.ConstructorGuard
}

// NewChangeVehicleStatusCommand creates a command to override a vehicle's status.
func NewChangeVehicleStatusCommand(vehicleID kernel.UUID, status vehicle.Status) (ChangeVehicleStatusCommand, error) {
	cmd := ChangeVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to update.
func (c ChangeVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Status returns the target vehicle status.
func (c ChangeVehicleStatusCommand) Status() vehicle.Status {
	return c.status
}

func (c *ChangeVehicleStatusCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *ChangeVehicleStatusCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
