package commands

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var (
	ErrEditTripCommandIsNotConstructed = errors.New(
		"EditTripCommand must be created via NewEditTripCommand constructor",
	)
	ErrNothingToEdit = errors.New("at least one field to edit is required")
)

// EditTripCommand represents a request to modify a scheduled trip's plan:
// its date, its estimated duration, or its collection line items.
// Absent fields are left unchanged; resource bindings cannot be edited.
type EditTripCommand struct { //nolint:recvcheck //using for validation
	tripID            kernel.UUID
	scheduledDate     *time.Time
	estimatedDuration *int
	collections       []CollectionItem

	guard guard.ConstructorGuard
}

// NewEditTripCommand creates a command to edit a trip's plan.
// Optional fields use pointers: nil means "leave unchanged". A nil
// collections slice keeps the current line items; a non-nil slice replaces
// them wholesale and must be non-empty.
func NewEditTripCommand(
	tripID kernel.UUID,
	scheduledDate *time.Time,
	estimatedDuration *int,
	collections []CollectionItem,
) (EditTripCommand, error) {
	cmd := EditTripCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setEstimatedDuration(estimatedDuration),
		cmd.setCollections(collections),
	); err != nil {
		return EditTripCommand{}, err
	}

	if scheduledDate == nil && estimatedDuration == nil && collections == nil {
		return EditTripCommand{}, ErrNothingToEdit
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditTripCommand) Validate() error {
	return c.guard.Validate(ErrEditTripCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to edit.
func (c EditTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// ScheduledDate returns the new planned start, or nil to keep the current one.
func (c EditTripCommand) ScheduledDate() *time.Time {
	return c.scheduledDate
}

// EstimatedDuration returns the new duration in minutes, or nil to keep the current one.
func (c EditTripCommand) EstimatedDuration() *int {
	return c.estimatedDuration
}

// Collections returns the replacement line items, or nil to keep the current set.
func (c EditTripCommand) Collections() []CollectionItem {
	if c.collections == nil {
		return nil
	}

	out := make([]CollectionItem, len(c.collections))
	copy(out, c.collections)
	return out
}

func (c *EditTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *EditTripCommand) setScheduledDate(scheduledDate *time.Time) error {
	if scheduledDate != nil && scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *EditTripCommand) setEstimatedDuration(estimatedDuration *int) error {
	if estimatedDuration != nil && *estimatedDuration <= 0 {
		return ErrEstimatedDurationIsInvalid
	}

	c.estimatedDuration = estimatedDuration
	return nil
}

func (c *EditTripCommand) setCollections(collections []CollectionItem) error {
	if collections == nil {
		return nil
	}

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
