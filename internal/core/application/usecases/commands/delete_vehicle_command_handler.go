package commands

import (
	"context"
	"errors"

	"fleettrip/internal/pkg/errs"
)

// DeleteVehicleCommandHandler handles vehicle removal.
// A vehicle bound to an active trip cannot be removed until that trip is
// completed, cancelled, or deleted.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle removal command.
func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	_, err := uow.TripRepository().GetActiveByVehicle(ctx, cmd.VehicleID())
	if err == nil {
		return errs.NewResourceConflictError("Vehicle is on trip")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = uow.VehicleRepository().Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
