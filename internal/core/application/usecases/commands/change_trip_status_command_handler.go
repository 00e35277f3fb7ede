package commands

import (
	"context"
	"errors"

	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/core/ports"
	"fleettrip/internal/pkg/errs"
)

// ChangeTripStatusCommandHandler handles trip lifecycle transitions.
// Terminal transitions (completed, cancelled) release the trip's driver and
// vehicle, but only when no other active trip still holds the resource.
type ChangeTripStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeTripStatusCommandHandler creates a handler for trip status transitions.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewChangeTripStatusCommandHandler(uowFactory UoWFactory) ChangeTripStatusCommandHandler {
	return ChangeTripStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// The trip update and any resource releases are committed in a single
// transaction. Illegal lifecycle transitions fail before any write.
func (h ChangeTripStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTripStatusCommand) error {
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

	tripRepo := uow.TripRepository()
	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	aggregate, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() {
		if err = releaseResources(ctx, tripRepo, driverRepo, vehicleRepo, aggregate.DriverID(), aggregate.VehicleID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseResources returns the driver and vehicle to their free statuses
// unless another active trip still holds them. Callers must first persist
// the change that frees the resource (trip update or delete) so the trip
// being closed no longer counts as active. Resources parked in a manual
// status (inactive driver, vehicle in maintenance) are left untouched.
func releaseResources(
	ctx context.Context,
	tripRepo ports.TripRepository,
	driverRepo ports.DriverRepository,
	vehicleRepo ports.VehicleRepository,
	driverID, vehicleID kernel.UUID,
) error {
	_, err := tripRepo.GetActiveByDriver(ctx, driverID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		tripDriver, getErr := driverRepo.Get(ctx, driverID)
		if getErr != nil {
			return getErr
		}

		if tripDriver.Status() == driver.OnTrip {
			if changeErr := tripDriver.ChangeStatus(driver.Available); changeErr != nil {
				return changeErr
			}

			if updateErr := driverRepo.Update(ctx, tripDriver); updateErr != nil {
				return updateErr
			}
		}
	} else if err != nil {
		return err
	}

	_, err = tripRepo.GetActiveByVehicle(ctx, vehicleID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		tripVehicle, getErr := vehicleRepo.Get(ctx, vehicleID)
		if getErr != nil {
			return getErr
		}

		if tripVehicle.Status() == vehicle.OnTrip {
			if changeErr := tripVehicle.ChangeStatus(vehicle.Idle); changeErr != nil {
				return changeErr
			}

			if updateErr := vehicleRepo.Update(ctx, tripVehicle); updateErr != nil {
				return updateErr
			}
		}
	} else if err != nil {
		return err
	}

	return nil
}
