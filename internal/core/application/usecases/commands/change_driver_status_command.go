package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents a manual driver status override,
// such as marking a driver inactive for leave or bringing them back.
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.Status

	guard guard.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to override a driver's status.
func NewChangeDriverStatusCommand(driverID kernel.UUID, status driver.Status) (ChangeDriverStatusCommand, error) {
	cmd := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c ChangeDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the target driver status.
func (c ChangeDriverStatusCommand) Status() driver.Status {
	return c.status
}

func (c *ChangeDriverStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *ChangeDriverStatusCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
