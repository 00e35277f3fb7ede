package commands

import (
	"context"

	"fleettrip/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// New drivers are persisted in the available status, ready for trip assignment.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration operations.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Uses a transaction to ensure the driver is properly persisted or rolled back on error.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseNumber(), cmd.PhoneNumber())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
