package trip

import (
	"errors"
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// defaultEstimatedDuration is applied when the caller does not supply one.
const defaultEstimatedDuration = 60

// Domain errors for trip operations.
var (
	// ErrScheduledDateIsRequired is returned when attempting to create a trip without a scheduled date.
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduledDate")
	// ErrCollectionsAreRequired is returned when a trip has no collection line items.
	ErrCollectionsAreRequired = errs.NewValueIsRequiredError("collections")
	// ErrEstimatedDurationIsInvalid is returned for a non-positive estimated duration.
	ErrEstimatedDurationIsInvalid = errs.NewValueIsInvalidError("estimatedDuration")
	// ErrTripIsNotConstructed is returned when using an improperly initialized Trip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
)

// Trip is the aggregate root binding one vehicle and one driver to an
// ordered set of mill pickups for a scheduled window.
//
// The vehicle and driver references are set at creation and immutable
// thereafter; rescheduling or re-planning pickups edits the trip, swapping
// resources means cancelling and creating a new trip.
//
// The aggregate owns its collections exclusively and surfaces their planned
// total so the allocation engine can compare it against the bound vehicle's
// capacity before any write (both at creation and on replacement).
type Trip struct {
	id                kernel.UUID
	vehicleID         kernel.UUID
	driverID          kernel.UUID
	scheduledDate     time.Time
	status            Status
	estimatedDuration int
	collections       []*Collection

	guard guard.ConstructorGuard
}

// NewTrip creates a Trip in Scheduled status with the given line items.
// estimatedDuration is in minutes; zero selects the default of 60.
// The collections list must be non-empty and every item must belong to
// this trip.
func NewTrip(
	id, vehicleID, driverID kernel.UUID,
	scheduledDate time.Time,
	estimatedDuration int,
	collections []*Collection,
) (*Trip, error) {
	if estimatedDuration == 0 {
		estimatedDuration = defaultEstimatedDuration
	}

	t := &Trip{
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setVehicleID(vehicleID),
		t.setDriverID(driverID),
		t.setScheduledDate(scheduledDate),
		t.setEstimatedDuration(estimatedDuration),
		t.setCollections(collections),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip aggregate from persistent storage with its
// persisted status and line items.
func RestoreTrip(
	id, vehicleID, driverID kernel.UUID,
	scheduledDate time.Time,
	status Status,
	estimatedDuration int,
	collections []*Collection,
) (*Trip, error) {
	t := &Trip{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setVehicleID(vehicleID),
		t.setDriverID(driverID),
		t.setScheduledDate(scheduledDate),
		t.setStatus(status),
		t.setEstimatedDuration(estimatedDuration),
		t.setCollections(collections),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks that the Trip was created via a constructor.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// IsEqual compares two trips by identifier.
func (t *Trip) IsEqual(other *Trip) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// ID returns the unique identifier of the trip.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// VehicleID returns the bound vehicle's identifier. Immutable after creation.
func (t *Trip) VehicleID() kernel.UUID {
	return t.vehicleID
}

// DriverID returns the bound driver's identifier. Immutable after creation.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// ScheduledDate returns the planned start of the trip.
func (t *Trip) ScheduledDate() time.Time {
	return t.scheduledDate
}

// Status returns the trip's lifecycle status.
func (t *Trip) Status() Status {
	return t.status
}

// EstimatedDuration returns the planned duration in minutes.
func (t *Trip) EstimatedDuration() int {
	return t.estimatedDuration
}

// Collections returns the trip's line items. The returned slice is a copy
// to prevent external modification of the owned set.
func (t *Trip) Collections() []*Collection {
	out := make([]*Collection, len(t.collections))
	copy(out, t.collections)
	return out
}

// IsActive reports whether the trip currently holds its driver and vehicle.
func (t *Trip) IsActive() bool {
	return t.status.IsActive()
}

// PlannedTotal returns the sum of planned quantities across all line items.
// The allocation engine compares this against the bound vehicle's capacity.
func (t *Trip) PlannedTotal() kernel.Quantity {
	total, _ := kernel.NewQuantity(0)
	for _, c := range t.collections {
		total = total.Add(c.Collected())
	}
	return total
}

// ChangeStatus moves the trip along the lifecycle graph.
// Illegal transitions (including any transition out of a terminal state)
// fail without mutating the trip.
func (t *Trip) ChangeStatus(to Status) error {
	newStatus, err := t.status.TransitionTo(to)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Reschedule updates the planned start of the trip.
func (t *Trip) Reschedule(scheduledDate time.Time) error {
	return t.setScheduledDate(scheduledDate)
}

// ChangeEstimatedDuration updates the planned duration in minutes.
func (t *Trip) ChangeEstimatedDuration(minutes int) error {
	return t.setEstimatedDuration(minutes)
}

// ReplaceCollections swaps the owned line-item set wholesale.
// The replacement must be non-empty; items for other trips are rejected.
// Partial replacement is never observable: the method either installs the
// complete new set or leaves the old one untouched.
func (t *Trip) ReplaceCollections(collections []*Collection) error {
	return t.setCollections(collections)
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

func (t *Trip) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	t.vehicleID = vehicleID
	return nil
}

func (t *Trip) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	t.driverID = driverID
	return nil
}

func (t *Trip) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}

	t.scheduledDate = scheduledDate
	return nil
}

func (t *Trip) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}

func (t *Trip) setEstimatedDuration(minutes int) error {
	if minutes <= 0 {
		return ErrEstimatedDurationIsInvalid
	}

	t.estimatedDuration = minutes
	return nil
}

func (t *Trip) setCollections(collections []*Collection) error {
	if len(collections) == 0 {
		return ErrCollectionsAreRequired
	}

	for _, c := range collections {
		if err := c.Validate(); err != nil {
			return err
		}
		if !c.TripID().IsEqual(t.id) {
			return errs.NewValueIsInvalidError("collections")
		}
	}

	t.collections = make([]*Collection, len(collections))
	copy(t.collections, collections)
	return nil
}
