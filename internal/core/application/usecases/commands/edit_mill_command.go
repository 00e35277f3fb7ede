package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrEditMillCommandIsNotConstructed = errors.New(
	"EditMillCommand must be created via NewEditMillCommand constructor",
)

// EditMillCommand represents a request to update a mill's reference data.
type EditMillCommand struct { //nolint:recvcheck //using for validation
	millID             kernel.UUID
	name               *string
	contactPerson      *string
	phoneNumber        *string
	avgDailyProduction *kernel.Quantity
	location           *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewEditMillCommand creates a command to edit a mill's reference data.
// Optional fields use pointers: nil means "leave unchanged".
func NewEditMillCommand(
	millID kernel.UUID,
	name, contactPerson, phoneNumber *string,
	avgDailyProduction *kernel.Quantity,
	location *kernel.GeoPoint,
) (EditMillCommand, error) {
	cmd := EditMillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMillID(millID),
		cmd.setName(name),
		cmd.setContactPerson(contactPerson),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setAvgDailyProduction(avgDailyProduction),
		cmd.setLocation(location),
	); err != nil {
		return EditMillCommand{}, err
	}

	if name == nil && contactPerson == nil && phoneNumber == nil &&
		avgDailyProduction == nil && location == nil {
		return EditMillCommand{}, ErrNothingToEdit
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditMillCommand) Validate() error {
	return c.guard.Validate(ErrEditMillCommandIsNotConstructed)
}

// MillID returns the identifier of the mill to edit.
func (c EditMillCommand) MillID() kernel.UUID {
	return c.millID
}

// Name returns the new name, or nil to keep the current one.
func (c EditMillCommand) Name() *string {
	return c.name
}

// ContactPerson returns the new contact person, or nil to keep the current one.
func (c EditMillCommand) ContactPerson() *string {
	return c.contactPerson
}

// PhoneNumber returns the new phone number, or nil to keep the current one.
func (c EditMillCommand) PhoneNumber() *string {
	return c.phoneNumber
}

// AvgDailyProduction returns the new production figure, or nil to keep the current one.
func (c EditMillCommand) AvgDailyProduction() *kernel.Quantity {
	return c.avgDailyProduction
}

// Location returns the new location, or nil to keep the current one.
func (c EditMillCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *EditMillCommand) setMillID(millID kernel.UUID) error {
	if err := millID.Validate(); err != nil {
		return err
	}

	c.millID = millID
	return nil
}

func (c *EditMillCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrMillNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditMillCommand) setContactPerson(contactPerson *string) error {
	if contactPerson != nil && *contactPerson == "" {
		return ErrContactPersonIsRequired
	}

	c.contactPerson = contactPerson
	return nil
}

func (c *EditMillCommand) setPhoneNumber(phoneNumber *string) error {
	if phoneNumber != nil && *phoneNumber == "" {
		return ErrMillPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *EditMillCommand) setAvgDailyProduction(avgDailyProduction *kernel.Quantity) error {
	if avgDailyProduction == nil {
		c.avgDailyProduction = nil
		return nil
	}

	if err := avgDailyProduction.Validate(); err != nil {
		return err
	}

	value := *avgDailyProduction
	c.avgDailyProduction = &value
	return nil
}

func (c *EditMillCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		c.location = nil
		return nil
	}

	if err := location.Validate(); err != nil {
		return err
	}

	value := *location
	c.location = &value
	return nil
}
