package commands

import (
	"context"
	"errors"

	"fleettrip/internal/pkg/errs"
)

// DeleteDriverCommandHandler handles driver removal.
// A driver bound to an active trip cannot be removed: the trip's record
// would dangle. The trip must be completed, cancelled, or deleted first.
type DeleteDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory UoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	_, err := uow.TripRepository().GetActiveByDriver(ctx, cmd.DriverID())
	if err == nil {
		return errs.NewResourceConflictError("Driver is on trip")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
