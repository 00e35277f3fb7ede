package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrDeleteTripCommandIsNotConstructed = errors.New(
	"DeleteTripCommand must be created via NewDeleteTripCommand constructor",
)

// DeleteTripCommand represents a request to remove a trip and its
// collection line items from the system.
type DeleteTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTripCommand creates a command to delete a trip.
func NewDeleteTripCommand(tripID kernel.UUID) (DeleteTripCommand, error) {
	cmd := DeleteTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTripID(tripID); err != nil {
		return DeleteTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTripCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTripCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to delete.
func (c DeleteTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c *DeleteTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}
