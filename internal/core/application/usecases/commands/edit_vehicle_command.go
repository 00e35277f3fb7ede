package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrEditVehicleCommandIsNotConstructed = errors.New(
	"EditVehicleCommand must be created via NewEditVehicleCommand constructor",
)

// EditVehicleCommand represents a request to update a vehicle's registration
// fields. The regular-driver relation is owned by AssignVehicleDriverCommand
// and status changes by ChangeVehicleStatusCommand; neither is editable here.
type EditVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	plateNumber *string
	vehicleType *string
	capacity    *kernel.Quantity

	guard guard.ConstructorGuard
}

// NewEditVehicleCommand creates a command to edit a vehicle's registration fields.
// Optional fields use pointers: nil means "leave unchanged"; a present
// capacity must be strictly positive.
func NewEditVehicleCommand(
	vehicleID kernel.UUID,
	plateNumber, vehicleType *string,
	capacity *kernel.Quantity,
) (EditVehicleCommand, error) {
	cmd := EditVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlateNumber(plateNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setCapacity(capacity),
	); err != nil {
		return EditVehicleCommand{}, err
	}

	if plateNumber == nil && vehicleType == nil && capacity == nil {
		return EditVehicleCommand{}, ErrNothingToEdit
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditVehicleCommand) Validate() error {
	return c.guard.Validate(ErrEditVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to edit.
func (c EditVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// PlateNumber returns the new plate number, or nil to keep the current one.
func (c EditVehicleCommand) PlateNumber() *string {
	return c.plateNumber
}

// Type returns the new vehicle type, or nil to keep the current one.
func (c EditVehicleCommand) Type() *string {
	return c.vehicleType
}

// Capacity returns the new capacity, or nil to keep the current one.
func (c EditVehicleCommand) Capacity() *kernel.Quantity {
	return c.capacity
}

func (c *EditVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *EditVehicleCommand) setPlateNumber(plateNumber *string) error {
	if plateNumber != nil && *plateNumber == "" {
		return ErrPlateNumberIsRequired
	}

	c.plateNumber = plateNumber
	return nil
}

func (c *EditVehicleCommand) setVehicleType(vehicleType *string) error {
	if vehicleType != nil && *vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *EditVehicleCommand) setCapacity(capacity *kernel.Quantity) error {
	if capacity == nil {
		c.capacity = nil
		return nil
	}

	if err := capacity.Validate(); err != nil {
		return err
	}

	value := *capacity
	c.capacity = &value
	return nil
}
