package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrEditDriverCommandIsNotConstructed = errors.New(
	"EditDriverCommand must be created via NewEditDriverCommand constructor",
)

// EditDriverCommand represents a request to update a driver's identity
// fields. Status changes go through ChangeDriverStatusCommand instead.
type EditDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          *string
	licenseNumber *string
	phoneNumber   *string

	guard guard.ConstructorGuard
}

// NewEditDriverCommand creates a command to edit a driver's identity fields.
// Optional fields use pointers: nil means "leave unchanged"; a present field
// must be non-empty.
func NewEditDriverCommand(
	driverID kernel.UUID,
	name, licenseNumber, phoneNumber *string,
) (EditDriverCommand, error) {
	cmd := EditDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setPhoneNumber(phoneNumber),
	); err != nil {
		return EditDriverCommand{}, err
	}

	if name == nil && licenseNumber == nil && phoneNumber == nil {
		return EditDriverCommand{}, ErrNothingToEdit
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDriverCommand) Validate() error {
	return c.guard.Validate(ErrEditDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to edit.
func (c EditDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the new name, or nil to keep the current one.
func (c EditDriverCommand) Name() *string {
	return c.name
}

// LicenseNumber returns the new license number, or nil to keep the current one.
func (c EditDriverCommand) LicenseNumber() *string {
	return c.licenseNumber
}

// PhoneNumber returns the new phone number, or nil to keep the current one.
func (c EditDriverCommand) PhoneNumber() *string {
	return c.phoneNumber
}

func (c *EditDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *EditDriverCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *EditDriverCommand) setLicenseNumber(licenseNumber *string) error {
	if licenseNumber != nil && *licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *EditDriverCommand) setPhoneNumber(phoneNumber *string) error {
	if phoneNumber != nil && *phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}
