package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/pkg/guard"
)

var ErrChangeTripStatusCommandIsNotConstructed = errors.New(
	"ChangeTripStatusCommand must be created via NewChangeTripStatusCommand constructor",
)

// ChangeTripStatusCommand represents a request to move a trip along its
// lifecycle: start it, complete it, or cancel it.
type ChangeTripStatusCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	status trip.Status

	guard guard.ConstructorGuard
}

// NewChangeTripStatusCommand creates a command to transition a trip's status.
// Validates the trip ID and that the target status is a valid lifecycle state.
// Whether the transition itself is legal is decided by the aggregate.
func NewChangeTripStatusCommand(tripID kernel.UUID, status trip.Status) (ChangeTripStatusCommand, error) {
	cmd := ChangeTripStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeTripStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTripStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTripStatusCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to transition.
func (c ChangeTripStatusCommand) TripID() kernel.UUID {
	return c.tripID
}

// Status returns the target lifecycle status.
func (c ChangeTripStatusCommand) Status() trip.Status {
	return c.status
}

func (c *ChangeTripStatusCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *ChangeTripStatusCommand) setStatus(status trip.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
