package commands

import (
	"context"
)

// DeleteMillCommandHandler handles mill removal. Mills are reference data;
// removal does not touch trips that already collected from the mill, though
// their line items will no longer resolve a mill name in read models.
type DeleteMillCommandHandler struct {
	uowFactory MillUoWFactory
}

// NewDeleteMillCommandHandler creates a handler for mill removal.
func NewDeleteMillCommandHandler(uowFactory MillUoWFactory) DeleteMillCommandHandler {
	return DeleteMillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mill removal command.
func (h DeleteMillCommandHandler) Handle(ctx context.Context, cmd DeleteMillCommand) error {
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

	if err := uow.MillRepository().Delete(ctx, cmd.MillID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
