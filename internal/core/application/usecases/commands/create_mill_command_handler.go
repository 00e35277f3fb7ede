package commands

import (
	"context"

	"fleettrip/internal/core/domain/model/mill"
)

// CreateMillCommandHandler handles the business logic for mill registration.
type CreateMillCommandHandler struct {
	uowFactory MillUoWFactory
}

// NewCreateMillCommandHandler creates a handler for mill registration operations.
func NewCreateMillCommandHandler(uowFactory MillUoWFactory) CreateMillCommandHandler {
	return CreateMillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mill registration command.
// Uses a transaction to ensure the mill is properly persisted or rolled back on error.
func (h CreateMillCommandHandler) Handle(ctx context.Context, cmd CreateMillCommand) error {
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

	newMill, err := mill.NewMill(
		cmd.MillID(),
		cmd.Name(),
		cmd.ContactPerson(),
		cmd.PhoneNumber(),
		cmd.AvgDailyProduction(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = uow.MillRepository().Add(ctx, newMill); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
