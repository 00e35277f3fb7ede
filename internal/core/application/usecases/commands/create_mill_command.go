package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var (
	ErrCreateMillCommandIsNotConstructed = errors.New(
		"CreateMillCommand must be created via NewCreateMillCommand constructor",
	)
	ErrMillNameIsRequired        = errors.New("name is required")
	ErrContactPersonIsRequired   = errors.New("contactPerson is required")
	ErrMillPhoneNumberIsRequired = errors.New("phoneNumber is required")
)

// CreateMillCommand represents a request to register a new mill pickup location.
type CreateMillCommand struct { //nolint:recvcheck //using for validation
	millID             kernel.UUID
	name               string
	contactPerson      string
	phoneNumber        string
	avgDailyProduction kernel.Quantity
	location           kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateMillCommand creates a command to register a new mill.
// Validates the mill ID, that the name is not empty, and that the average
// daily production and location are constructed values.
func NewCreateMillCommand(
	millID kernel.UUID,
	name, contactPerson, phoneNumber string,
	avgDailyProduction kernel.Quantity,
	location kernel.GeoPoint,
) (CreateMillCommand, error) {
	cmd := CreateMillCommand{
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
		return CreateMillCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMillCommand) Validate() error {
	return c.guard.Validate(ErrCreateMillCommandIsNotConstructed)
}

// MillID returns the unique identifier for the mill.
func (c CreateMillCommand) MillID() kernel.UUID {
	return c.millID
}

// Name returns the mill's name.
func (c CreateMillCommand) Name() string {
	return c.name
}

// ContactPerson returns the mill's contact person.
func (c CreateMillCommand) ContactPerson() string {
	return c.contactPerson
}

// PhoneNumber returns the mill's contact phone number.
func (c CreateMillCommand) PhoneNumber() string {
	return c.phoneNumber
}

// AvgDailyProduction returns the mill's average daily output in tons.
func (c CreateMillCommand) AvgDailyProduction() kernel.Quantity {
	return c.avgDailyProduction
}

// Location returns the mill's geographic coordinates.
func (c CreateMillCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateMillCommand) setMillID(millID kernel.UUID) error {
	if err := millID.Validate(); err != nil {
		return err
	}

	c.millID = millID
	return nil
}

func (c *CreateMillCommand) setName(name string) error {
	if name == "" {
		return ErrMillNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMillCommand) setContactPerson(contactPerson string) error {
	if contactPerson == "" {
		return ErrContactPersonIsRequired
	}

	c.contactPerson = contactPerson
	return nil
}

func (c *CreateMillCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrMillPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreateMillCommand) setAvgDailyProduction(avgDailyProduction kernel.Quantity) error {
	if err := avgDailyProduction.Validate(); err != nil {
		return err
	}

	c.avgDailyProduction = avgDailyProduction
	return nil
}

func (c *CreateMillCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
