package driver

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenseNumberIsRequired is returned when attempting to create a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrPhoneNumberIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneNumberIsRequired = errs.NewValueIsRequiredError("phoneNumber")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the aggregate root for a fleet driver.
//
// A driver's identity fields (name, license, phone) are plain attributes; the
// interesting invariant lives in the status field, which only the allocation
// engine mutates: directly when a trip binds or releases the driver, or via a
// caller-requested status patch the engine gates with the active-trip check.
type Driver struct {
	id            kernel.UUID
	name          string
	licenseNumber string
	phoneNumber   string
	status        Status

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in Available status.
// All identity fields are required; validation errors are aggregated.
func NewDriver(id kernel.UUID, name, licenseNumber, phoneNumber string) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNumber(licenseNumber),
		d.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its persisted status. The restored driver behaves identically
// to one created through normal domain operations.
func RestoreDriver(id kernel.UUID, name, licenseNumber, phoneNumber string, status Status) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicenseNumber(licenseNumber),
		d.setPhoneNumber(phoneNumber),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Driver was created via a constructor.
// The zero value of Driver is invalid and fails this validation.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// PhoneNumber returns the driver's phone number.
func (d *Driver) PhoneNumber() string {
	return d.phoneNumber
}

// Status returns the driver's current cached status.
func (d *Driver) Status() Status {
	return d.status
}

// IsAvailable reports whether the driver can be bound to a new trip.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// ChangeName updates the driver's name. The name must be non-empty.
func (d *Driver) ChangeName(name string) error {
	return d.setName(name)
}

// ChangeLicenseNumber updates the driver's license number.
func (d *Driver) ChangeLicenseNumber(licenseNumber string) error {
	return d.setLicenseNumber(licenseNumber)
}

// ChangePhoneNumber updates the driver's phone number.
func (d *Driver) ChangePhoneNumber(phoneNumber string) error {
	return d.setPhoneNumber(phoneNumber)
}

// ChangeStatus sets the driver's status after validating the target value.
// Callers are responsible for consulting the active-trip check first; this
// method performs the unconditional write the allocation engine needs once
// the change has been cleared.
func (d *Driver) ChangeStatus(status Status) error {
	return d.setStatus(status)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	d.phoneNumber = phoneNumber
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}
