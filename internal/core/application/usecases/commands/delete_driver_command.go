package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents a request to remove a driver from the fleet.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a command to remove a driver.
func NewDeleteDriverCommand(driverID kernel.UUID) (DeleteDriverCommand, error) {
	cmd := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return DeleteDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to remove.
func (c DeleteDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DeleteDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
