package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrAssignVehicleDriverCommandIsNotConstructed = errors.New(
	"AssignVehicleDriverCommand must be created via NewAssignVehicleDriverCommand constructor",
)

// AssignVehicleDriverCommand represents a request to set or clear a
// vehicle's regular driver. This is a bookkeeping relation; trip
// assignment selects driver and vehicle independently.
type AssignVehicleDriverCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleDriverCommand creates a command to set a vehicle's regular driver.
// A nil driverID clears the relation.
func NewAssignVehicleDriverCommand(vehicleID kernel.UUID, driverID *kernel.UUID) (AssignVehicleDriverCommand, error) {
	cmd := AssignVehicleDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignVehicleDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleDriverCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to update.
func (c AssignVehicleDriverCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the regular driver to assign, or nil to unassign.
func (c AssignVehicleDriverCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *AssignVehicleDriverCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *AssignVehicleDriverCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
