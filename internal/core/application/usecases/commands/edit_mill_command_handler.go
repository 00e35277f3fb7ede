package commands

import (
	"context"
)

// EditMillCommandHandler handles updates to a mill's reference data.
type EditMillCommandHandler struct {
	uowFactory MillUoWFactory
}

// NewEditMillCommandHandler creates a handler for mill edit operations.
func NewEditMillCommandHandler(uowFactory MillUoWFactory) EditMillCommandHandler {
	return EditMillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mill edit command.
// Present fields are applied in place; absent fields keep their values.
func (h EditMillCommandHandler) Handle(ctx context.Context, cmd EditMillCommand) error {
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

	aggregate, err := uow.MillRepository().Get(ctx, cmd.MillID())
	if err != nil {
		return err
	}

	if cmd.Name() != nil {
		if err = aggregate.ChangeName(*cmd.Name()); err != nil {
			return err
		}
	}

	if cmd.ContactPerson() != nil {
		if err = aggregate.ChangeContactPerson(*cmd.ContactPerson()); err != nil {
			return err
		}
	}

	if cmd.PhoneNumber() != nil {
		if err = aggregate.ChangePhoneNumber(*cmd.PhoneNumber()); err != nil {
			return err
		}
	}

	if cmd.AvgDailyProduction() != nil {
		if err = aggregate.ChangeAvgDailyProduction(*cmd.AvgDailyProduction()); err != nil {
			return err
		}
	}

	if cmd.Location() != nil {
		if err = aggregate.Relocate(*cmd.Location()); err != nil {
			return err
		}
	}

	if err = uow.MillRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
