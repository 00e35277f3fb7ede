package commands

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New(
		"CreateTripCommand must be created via NewCreateTripCommand constructor",
	)
	ErrScheduledDateIsRequired    = errors.New("scheduledDate is required")
	ErrCollectionsAreRequired     = errors.New("collections are required")
	ErrEstimatedDurationIsInvalid = errors.New("estimatedDuration must be greater than 0")
)

// CollectionItem is one planned mill pickup inside a trip command.
type CollectionItem struct {
	MillID   kernel.UUID
	Quantity kernel.Quantity
}

// CreateTripCommand represents a request to schedule a new collection trip.
// Binds one vehicle and one driver to an ordered set of mill pickups.
//
// Example:
//
//	items := []commands.CollectionItem{{MillID: millID, Quantity: fiveTons}}
//	cmd, err := commands.NewCreateTripCommand(tripID, vehicleID, driverID, date, 90, items)
//	if err != nil {
//	    return fmt.Errorf("invalid trip data: %w", err)
//	}
//
//	handler := commands.NewCreateTripCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to schedule trip: %w", err)
//	}
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID            kernel.UUID
	vehicleID         kernel.UUID
	driverID          kernel.UUID
	scheduledDate     time.Time
	estimatedDuration int
	collections       []CollectionItem

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to schedule a new trip.
// Validates all identifiers, the scheduled date, and that at least one
// collection item is present with a valid mill and quantity.
// estimatedDuration is in minutes; zero selects the domain default.
func NewCreateTripCommand(
	tripID, vehicleID, driverID kernel.UUID,
	scheduledDate time.Time,
	estimatedDuration int,
	collections []CollectionItem,
) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setEstimatedDuration(estimatedDuration),
		cmd.setCollections(collections),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the unique identifier for the trip.
func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// VehicleID returns the identifier of the vehicle to bind.
func (c CreateTripCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the identifier of the driver to bind.
func (c CreateTripCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ScheduledDate returns the planned start of the trip.
func (c CreateTripCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// EstimatedDuration returns the planned duration in minutes. Zero means
// the domain default applies.
func (c CreateTripCommand) EstimatedDuration() int {
	return c.estimatedDuration
}

// Collections returns the planned mill pickups.
func (c CreateTripCommand) Collections() []CollectionItem {
	out := make([]CollectionItem, len(c.collections))
	copy(out, c.collections)
	return out
}

func (c *CreateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateTripCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateTripCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateTripCommand) setEstimatedDuration(estimatedDuration int) error {
	if estimatedDuration < 0 {
		return ErrEstimatedDurationIsInvalid
	}

	c.estimatedDuration = estimatedDuration
	return nil
}

func (c *CreateTripCommand) setCollections(collections []CollectionItem) error {
	if len(collections) == 0 {
		return ErrCollectionsAreRequired
	}

	for _, item := range collections {
		if err := item.MillID.Validate(); err != nil {
			return err
		}
		if err := item.Quantity.Validate(); err != nil {
			return err
		}
	}

	c.collections = make([]CollectionItem, len(collections))
	copy(c.collections, collections)
	return nil
}
