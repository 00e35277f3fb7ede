package commands

import (
	"context"
)

// AssignVehicleDriverCommandHandler handles changes to a vehicle's
// regular-driver relation. The referenced driver must exist; clearing the
// relation requires no driver lookup.
type AssignVehicleDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignVehicleDriverCommandHandler creates a handler for regular-driver assignment.
func NewAssignVehicleDriverCommandHandler(uowFactory UoWFactory) AssignVehicleDriverCommandHandler {
	return AssignVehicleDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the regular-driver assignment command.
func (h AssignVehicleDriverCommandHandler) Handle(ctx context.Context, cmd AssignVehicleDriverCommand) error {
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

	if cmd.DriverID() != nil {
		if _, err = uow.DriverRepository().Get(ctx, *cmd.DriverID()); err != nil {
			return err
		}
	}

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
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
