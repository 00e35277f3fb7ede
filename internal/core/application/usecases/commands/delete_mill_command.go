package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrDeleteMillCommandIsNotConstructed = errors.New(
	"DeleteMillCommand must be created via NewDeleteMillCommand constructor",
)

// DeleteMillCommand represents a request to remove a mill from the registry.
type DeleteMillCommand struct { //nolint:recvcheck //using for validation
	millID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMillCommand creates a command to remove a mill.
func NewDeleteMillCommand(millID kernel.UUID) (DeleteMillCommand, error) {
	cmd := DeleteMillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMillID(millID); err != nil {
		return DeleteMillCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMillCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMillCommandIsNotConstructed)
}

// MillID returns the identifier of the mill to remove.
func (c DeleteMillCommand) MillID() kernel.UUID {
	return c.millID
}

func (c *DeleteMillCommand) setMillID(millID kernel.UUID) error {
	if err := millID.Validate(); err != nil {
		return err
	}

	c.millID = millID
	return nil
}
