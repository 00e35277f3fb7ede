package vehicle

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateNumberIsRequired is returned when attempting to create a vehicle without a plate number.
	ErrPlateNumberIsRequired = errs.NewValueIsRequiredError("plateNumber")
	// ErrTypeIsRequired is returned when attempting to create a vehicle without a type.
	ErrTypeIsRequired = errs.NewValueIsRequiredError("type")
	// ErrCapacityIsRequired is returned when attempting to create a vehicle with a non-positive capacity.
	ErrCapacityIsRequired = errs.NewValueIsRequiredError("capacity")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is the aggregate root for a fleet vehicle.
//
// Capacity bounds the total planned collection of any single trip the
// vehicle is bound to (the trip aggregate surfaces the planned total, the
// allocation engine compares it against this capacity before any write).
//
// The driverID field is a weak reference: a regular-driver relation used for
// planning convenience, not ownership. Trips bind drivers independently.
type Vehicle struct {
	id          kernel.UUID
	plateNumber string
	vehicleType string
	capacity    kernel.Quantity
	driverID    *kernel.UUID
	status      Status

	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle in Idle status.
// Plate number and type are required; capacity must be strictly positive.
// driverID may be nil when no regular driver is assigned.
func NewVehicle(
	id kernel.UUID,
	plateNumber, vehicleType string,
	capacity kernel.Quantity,
	driverID *kernel.UUID,
) (*Vehicle, error) {
	v := &Vehicle{
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNumber(plateNumber),
		v.setType(vehicleType),
		v.setCapacity(capacity),
		v.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its persisted status and driver relation.
func RestoreVehicle(
	id kernel.UUID,
	plateNumber, vehicleType string,
	capacity kernel.Quantity,
	driverID *kernel.UUID,
	status Status,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNumber(plateNumber),
		v.setType(vehicleType),
		v.setCapacity(capacity),
		v.setDriverID(driverID),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks that the Vehicle was created via a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// PlateNumber returns the vehicle's registration plate.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// Type returns the vehicle's type (e.g. "truck", "tanker").
func (v *Vehicle) Type() string {
	return v.vehicleType
}

// Capacity returns the maximum total quantity the vehicle may carry in one trip.
func (v *Vehicle) Capacity() kernel.Quantity {
	return v.capacity
}

// DriverID returns the regular-driver relation, nil when unassigned.
func (v *Vehicle) DriverID() *kernel.UUID {
	return v.driverID
}

// Status returns the vehicle's current cached status.
func (v *Vehicle) Status() Status {
	return v.status
}

// IsIdle reports whether the vehicle can be bound to a new trip.
func (v *Vehicle) IsIdle() bool {
	return v.status == Idle
}

// ChangeStatus sets the vehicle's status after validating the target value.
// As with drivers, the active-trip check happens at the allocation engine;
// this method performs the cleared write.
func (v *Vehicle) ChangeStatus(status Status) error {
	return v.setStatus(status)
}

// ChangePlateNumber updates the vehicle's registration plate.
func (v *Vehicle) ChangePlateNumber(plateNumber string) error {
	return v.setPlateNumber(plateNumber)
}

// ChangeType updates the vehicle's type.
func (v *Vehicle) ChangeType(vehicleType string) error {
	return v.setType(vehicleType)
}

// ChangeCapacity updates the vehicle's carrying capacity.
// The capacity must be strictly positive. Trips already scheduled against
// the old capacity are not re-validated here.
func (v *Vehicle) ChangeCapacity(capacity kernel.Quantity) error {
	return v.setCapacity(capacity)
}

// AssignDriver sets or clears the regular-driver relation.
// Passing nil unassigns the driver.
func (v *Vehicle) AssignDriver(driverID *kernel.UUID) error {
	return v.setDriverID(driverID)
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

func (v *Vehicle) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return ErrPlateNumberIsRequired
	}

	v.plateNumber = plateNumber
	return nil
}

func (v *Vehicle) setType(vehicleType string) error {
	if vehicleType == "" {
		return ErrTypeIsRequired
	}

	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(capacity kernel.Quantity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	if capacity.IsZero() {
		return ErrCapacityIsRequired
	}

	v.capacity = capacity
	return nil
}

func (v *Vehicle) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		v.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	id := *driverID
	v.driverID = &id
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	v.status = status
	return nil
}
