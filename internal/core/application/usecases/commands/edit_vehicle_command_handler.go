package commands

import (
	"context"
)

// EditVehicleCommandHandler handles updates to a vehicle's registration fields.
type EditVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewEditVehicleCommandHandler creates a handler for vehicle edit operations.
func NewEditVehicleCommandHandler(uowFactory VehicleUoWFactory) EditVehicleCommandHandler {
	return EditVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle edit command.
// Present fields are applied in place; absent fields keep their values.
// A plate number change that collides with another vehicle surfaces as a
// unique violation from the repository.
func (h EditVehicleCommandHandler) Handle(ctx context.Context, cmd EditVehicleCommand) error {
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

	if cmd.PlateNumber() != nil {
		if err = aggregate.ChangePlateNumber(*cmd.PlateNumber()); err != nil {
			return err
		}
	}

	if cmd.Type() != nil {
		if err = aggregate.ChangeType(*cmd.Type()); err != nil {
			return err
		}
	}

	if cmd.Capacity() != nil {
		if err = aggregate.ChangeCapacity(*cmd.Capacity()); err != nil {
			return err
		}
	}

	if err = uow.VehicleRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
