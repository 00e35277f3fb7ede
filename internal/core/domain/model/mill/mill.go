// Package mill provides the Mill aggregate. Mills are pickup points with
// contact details and production figures. Trip logic only reads them; the
// aggregate's mutators exist for the reference-data maintenance commands
// and carry no lifecycle state.
package mill

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// Domain errors for mill operations.
var (
	// ErrNameIsRequired is returned when attempting to create a mill without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContactPersonIsRequired is returned when attempting to create a mill without a contact person.
	ErrContactPersonIsRequired = errs.NewValueIsRequiredError("contactPerson")
	// ErrPhoneNumberIsRequired is returned when attempting to create a mill without a phone number.
	ErrPhoneNumberIsRequired = errs.NewValueIsRequiredError("phoneNumber")
	// ErrMillIsNotConstructed is returned when using an improperly initialized Mill.
	ErrMillIsNotConstructed = errors.New("Mill must be created via NewMill constructor")
)

// Mill is a pickup point the fleet collects from.
type Mill struct {
	id                 kernel.UUID
	name               string
	contactPerson      string
	phoneNumber        string
	avgDailyProduction kernel.Quantity
	location           kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewMill creates a new Mill with the given contact and production details.
func NewMill(
	id kernel.UUID,
	name, contactPerson, phoneNumber string,
	avgDailyProduction kernel.Quantity,
	location kernel.GeoPoint,
) (*Mill, error) {
	m := &Mill{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setContactPerson(contactPerson),
		m.setPhoneNumber(phoneNumber),
		m.setAvgDailyProduction(avgDailyProduction),
		m.setLocation(location),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMill reconstructs a Mill from persistent storage.
func RestoreMill(
	id kernel.UUID,
	name, contactPerson, phoneNumber string,
	avgDailyProduction kernel.Quantity,
	location kernel.GeoPoint,
) (*Mill, error) {
	return NewMill(id, name, contactPerson, phoneNumber, avgDailyProduction, location)
}

// Validate checks that the Mill was created via a constructor.
func (m *Mill) Validate() error {
	if m == nil {
		return ErrMillIsNotConstructed
	}
	return m.guard.Validate(ErrMillIsNotConstructed)
}

// ID returns the unique identifier of the mill.
func (m *Mill) ID() kernel.UUID {
	return m.id
}

// Name returns the mill's name.
func (m *Mill) Name() string {
	return m.name
}

// ContactPerson returns the mill's contact person.
func (m *Mill) ContactPerson() string {
	return m.contactPerson
}

// PhoneNumber returns the mill's phone number.
func (m *Mill) PhoneNumber() string {
	return m.phoneNumber
}

// AvgDailyProduction returns the mill's average daily production.
func (m *Mill) AvgDailyProduction() kernel.Quantity {
	return m.avgDailyProduction
}

// Location returns the mill's geographic location.
func (m *Mill) Location() kernel.GeoPoint {
	return m.location
}

// ChangeName updates the mill's name.
func (m *Mill) ChangeName(name string) error {
	return m.setName(name)
}

// ChangeContactPerson updates the mill's contact person.
func (m *Mill) ChangeContactPerson(contactPerson string) error {
	return m.setContactPerson(contactPerson)
}

// ChangePhoneNumber updates the mill's phone number.
func (m *Mill) ChangePhoneNumber(phoneNumber string) error {
	return m.setPhoneNumber(phoneNumber)
}

// ChangeAvgDailyProduction updates the mill's average daily production.
func (m *Mill) ChangeAvgDailyProduction(avgDailyProduction kernel.Quantity) error {
	return m.setAvgDailyProduction(avgDailyProduction)
}

// Relocate updates the mill's geographic location.
func (m *Mill) Relocate(location kernel.GeoPoint) error {
	return m.setLocation(location)
}

func (m *Mill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	return nil
}

func (m *Mill) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	m.name = name
	return nil
}

func (m *Mill) setContactPerson(contactPerson string) error {
	if contactPerson == "" {
		return ErrContactPersonIsRequired
	}

	m.contactPerson = contactPerson
	return nil
}

func (m *Mill) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	m.phoneNumber = phoneNumber
	return nil
}

func (m *Mill) setAvgDailyProduction(avgDailyProduction kernel.Quantity) error {
	if err := avgDailyProduction.Validate(); err != nil {
		return err
	}

	m.avgDailyProduction = avgDailyProduction
	return nil
}

func (m *Mill) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	m.location = location
	return nil
}
