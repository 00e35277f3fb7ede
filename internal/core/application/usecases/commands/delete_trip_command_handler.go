package commands

import (
	"context"
)

// DeleteTripCommandHandler handles trip removal.
// Deleting an active trip releases its driver and vehicle unless another
// active trip still holds them; deleting a terminal trip touches nothing
// but the trip itself.
type DeleteTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteTripCommandHandler creates a handler for trip deletion operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDeleteTripCommandHandler(uowFactory UoWFactory) DeleteTripCommandHandler {
	return DeleteTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip deletion command.
// The trip removal, its collections, and any resource releases are committed
// in a single transaction. Deleting an unknown trip returns a not-found error.
func (h DeleteTripCommandHandler) Handle(ctx context.Context, cmd DeleteTripCommand) error {
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

	wasActive := aggregate.IsActive()

	if err = tripRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if wasActive {
		if err = releaseResources(ctx, tripRepo, driverRepo, vehicleRepo, aggregate.DriverID(), aggregate.VehicleID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
