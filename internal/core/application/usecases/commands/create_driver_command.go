package commands

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("name is required")
	ErrLicenseNumberIsRequired = errors.New("licenseNumber is required")
	ErrPhoneNumberIsRequired   = errors.New("phoneNumber is required")
)

// CreateDriverCommand represents a request to register a new driver.
// New drivers always start in the available status.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	licenseNumber string
	phoneNumber   string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates that the driver ID is valid and name, license number, and
// phone number are not empty.
func NewCreateDriverCommand(driverID kernel.UUID, name, licenseNumber, phoneNumber string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setPhoneNumber(phoneNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's full name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// PhoneNumber returns the driver's contact phone number.
func (c CreateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *CreateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}
