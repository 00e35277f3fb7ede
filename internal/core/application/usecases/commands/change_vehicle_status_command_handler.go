package commands

import (
	"context"
	"errors"

	"fleettrip/internal/pkg/errs"
)

// ChangeVehicleStatusCommandHandler handles manual vehicle status overrides.
// A vehicle bound to an active trip cannot be moved out of the on_trip
// status by hand; the trip must be completed, cancelled, or deleted first.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeVehicleStatusCommandHandler creates a handler for vehicle status overrides.
func NewChangeVehicleStatusCommandHandler(uowFactory UoWFactory) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle status override command.
func (h ChangeVehicleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStatusCommand) error {
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

	aggregate, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	_, err = uow.TripRepository().GetActiveByVehicle(ctx, cmd.VehicleID())
	if err == nil {
		return errs.NewResourceConflictError("Vehicle is on trip")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
