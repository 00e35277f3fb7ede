package commands

import (
	"context"
)

// EditDriverCommandHandler handles updates to a driver's identity fields.
type EditDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewEditDriverCommandHandler creates a handler for driver edit operations.
func NewEditDriverCommandHandler(uowFactory DriverUoWFactory) EditDriverCommandHandler {
	return EditDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver edit command.
// Present fields are applied in place; absent fields keep their values.
func (h EditDriverCommandHandler) Handle(ctx context.Context, cmd EditDriverCommand) error {
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

	aggregate, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.Name() != nil {
		if err = aggregate.ChangeName(*cmd.Name()); err != nil {
			return err
		}
	}

	if cmd.LicenseNumber() != nil {
		if err = aggregate.ChangeLicenseNumber(*cmd.LicenseNumber()); err != nil {
			return err
		}
	}

	if cmd.PhoneNumber() != nil {
		if err = aggregate.ChangePhoneNumber(*cmd.PhoneNumber()); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
