package trip

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

// ErrCollectionIsNotConstructed is returned when using an improperly
// initialized Collection.
var ErrCollectionIsNotConstructed = errors.New("Collection must be created via NewCollection constructor")

// Collection is a trip line item: the planned (later actual) quantity to be
// picked up at one mill. Collections live and die with their owning trip —
// they are created with it, replaced wholesale on edit, and destroyed with it.
type Collection struct {
	id        kernel.UUID
	tripID    kernel.UUID
	millID    kernel.UUID
	collected kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCollection creates a line item binding a mill and a quantity to a trip.
func NewCollection(id, tripID, millID kernel.UUID, collected kernel.Quantity) (*Collection, error) {
	c := &Collection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setTripID(tripID),
		c.setMillID(millID),
		c.setCollected(collected),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCollection reconstructs a Collection from persistent storage.
func RestoreCollection(id, tripID, millID kernel.UUID, collected kernel.Quantity) (*Collection, error) {
	return NewCollection(id, tripID, millID, collected)
}

// Validate checks that the Collection was created via a constructor.
func (c *Collection) Validate() error {
	if c == nil {
		return ErrCollectionIsNotConstructed
	}
	return c.guard.Validate(ErrCollectionIsNotConstructed)
}

// ID returns the unique identifier of the line item.
func (c *Collection) ID() kernel.UUID {
	return c.id
}

// TripID returns the identifier of the owning trip.
func (c *Collection) TripID() kernel.UUID {
	return c.tripID
}

// MillID returns the identifier of the mill to collect from.
func (c *Collection) MillID() kernel.UUID {
	return c.millID
}

// Collected returns the planned or actual quantity for this mill.
func (c *Collection) Collected() kernel.Quantity {
	return c.collected
}

func (c *Collection) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Collection) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *Collection) setMillID(millID kernel.UUID) error {
	if err := millID.Validate(); err != nil {
		return err
	}

	c.millID = millID
	return nil
}

func (c *Collection) setCollected(collected kernel.Quantity) error {
	if err := collected.Validate(); err != nil {
		return err
	}

	c.collected = collected
	return nil
}
