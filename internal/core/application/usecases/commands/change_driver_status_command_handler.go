package commands

import (
	"context"
	"errors"

	"fleettrip/internal/pkg/errs"
)

// ChangeDriverStatusCommandHandler handles manual driver status overrides.
// A driver bound to an active trip cannot be moved out of the on_trip
// status by hand; the trip must be completed, cancelled, or deleted first.
type ChangeDriverStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status overrides.
func NewChangeDriverStatusCommandHandler(uowFactory UoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver status override command.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
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

	_, err = uow.TripRepository().GetActiveByDriver(ctx, cmd.DriverID())
	if err == nil {
		return errs.NewResourceConflictError("Driver is on trip")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
