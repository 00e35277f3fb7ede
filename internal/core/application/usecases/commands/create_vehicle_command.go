package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrPlateNumberIsRequired = errors.New("plateNumber is required")
	ErrVehicleTypeIsRequired = errors.New("vehicleType is required")
)

// CreateVehicleCommand represents a request to register a new vehicle.
// New vehicles always start in the idle status. An optional regular driver
// may be assigned at registration time.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	plateNumber string
	vehicleType string
	capacity    kernel.Quantity
	driverID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates that the vehicle ID is valid, plate number and type are not
// empty, and capacity is a constructed, non-zero quantity.
// driverID may be nil when no regular driver is assigned.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	plateNumber, vehicleType string,
	capacity kernel.Quantity,
	driverID *kernel.UUID,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setPlateNumber(plateNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setCapacity(capacity),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// PlateNumber returns the vehicle's registration plate number.
func (c CreateVehicleCommand) PlateNumber() string {
	return c.plateNumber
}

// VehicleType returns the vehicle's type designation.
func (c CreateVehicleCommand) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the vehicle's maximum load in tons.
func (c CreateVehicleCommand) Capacity() kernel.Quantity {
	return c.capacity
}

// DriverID returns the optional regular driver, or nil.
func (c CreateVehicleCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return ErrPlateNumberIsRequired
	}

	c.plateNumber = plateNumber
	return nil
}

func (c *CreateVehicleCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity kernel.Quantity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}

func (c *CreateVehicleCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}
