package commands

import (
	"context"
	"errors"

	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/core/ports"
	"fleettrip/internal/pkg/errs"
)

// CreateTripCommandHandler orchestrates trip scheduling.
// Verifies resource availability, checks the planned load against the
// vehicle's capacity, and atomically persists the trip together with the
// driver and vehicle status changes.
//
// Availability is checked two ways: the cached status on the driver and
// vehicle rows, and an active-trip lookup in storage. The lookup is the
// source of truth; the cached statuses exist for cheap reads and can lag
// behind under concurrent writers.
type CreateTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateTripCommandHandler creates a handler for trip scheduling operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCreateTripCommandHandler(uowFactory UoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip scheduling command.
// The trip, the driver's on_trip status, and the vehicle's on_trip status
// are committed in a single transaction; any failure rolls back all three.
func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()
	millRepo := uow.MillRepository()
	tripRepo := uow.TripRepository()

	tripDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	tripVehicle, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if !tripDriver.IsAvailable() {
		return errs.NewResourceConflictError("Driver is not available")
	}

	if !tripVehicle.IsIdle() {
		return errs.NewResourceConflictError("Vehicle is not idle")
	}

	if err = h.checkNoActiveTrips(ctx, tripRepo, cmd.DriverID(), cmd.VehicleID()); err != nil {
		return err
	}

	collections := make([]*trip.Collection, 0, len(cmd.Collections()))
	for _, item := range cmd.Collections() {
		if _, err = millRepo.Get(ctx, item.MillID); err != nil {
			return err
		}

		collection, err := trip.NewCollection(kernel.NewUUID(), cmd.TripID(), item.MillID, item.Quantity)
		if err != nil {
			return err
		}

		collections = append(collections, collection)
	}

	newTrip, err := trip.NewTrip(
		cmd.TripID(),
		cmd.VehicleID(),
		cmd.DriverID(),
		cmd.ScheduledDate(),
		cmd.EstimatedDuration(),
		collections,
	)
	if err != nil {
		return err
	}

	if newTrip.PlannedTotal().GreaterThan(tripVehicle.Capacity()) {
		return errs.NewCapacityExceededError(newTrip.PlannedTotal().Tons(), tripVehicle.Capacity().Tons())
	}

	if err = tripDriver.ChangeStatus(driver.OnTrip); err != nil {
		return err
	}

	if err = tripVehicle.ChangeStatus(vehicle.OnTrip); err != nil {
		return err
	}

	if err = tripRepo.Add(ctx, newTrip); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, tripDriver); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, tripVehicle); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// checkNoActiveTrips consults storage for active trips already holding the
// driver or the vehicle. This catches stale cached statuses.
func (h CreateTripCommandHandler) checkNoActiveTrips(
	ctx context.Context,
	tripRepo ports.TripRepository,
	driverID, vehicleID kernel.UUID,
) error {
	_, err := tripRepo.GetActiveByDriver(ctx, driverID)
	if err == nil {
		return errs.NewResourceConflictError("Driver is not available")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = tripRepo.GetActiveByVehicle(ctx, vehicleID)
	if err == nil {
		return errs.NewResourceConflictError("Vehicle is not idle")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}
