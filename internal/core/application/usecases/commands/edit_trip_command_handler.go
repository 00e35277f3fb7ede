package commands

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/pkg/errs"
)

// EditTripCommandHandler handles modifications to a trip's plan.
// When the collection set is replaced, the new planned total is re-checked
// against the bound vehicle's capacity and the old line items are swapped
// for the new ones atomically.
type EditTripCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditTripCommandHandler creates a handler for trip edit operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewEditTripCommandHandler(uowFactory UoWFactory) EditTripCommandHandler {
	return EditTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip edit command.
// All changes are committed in a single transaction; a failed capacity
// check or mill lookup leaves the stored trip untouched.
func (h EditTripCommandHandler) Handle(ctx context.Context, cmd EditTripCommand) error {
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

	tripRepo := uow.TripRepository()

	aggregate, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	if cmd.ScheduledDate() != nil {
		if err = aggregate.Reschedule(*cmd.ScheduledDate()); err != nil {
			return err
		}
	}

	if cmd.EstimatedDuration() != nil {
		if err = aggregate.ChangeEstimatedDuration(*cmd.EstimatedDuration()); err != nil {
			return err
		}
	}

	if items := cmd.Collections(); items != nil {
		millRepo := uow.MillRepository()

		collections := make([]*trip.Collection, 0, len(items))
		for _, item := range items {
			if _, err = millRepo.Get(ctx, item.MillID); err != nil {
				return err
			}

			collection, err := trip.NewCollection(kernel.NewUUID(), aggregate.ID(), item.MillID, item.Quantity)
			if err != nil {
				return err
			}

			collections = append(collections, collection)
		}

		if err = aggregate.ReplaceCollections(collections); err != nil {
			return err
		}

		tripVehicle, err := uow.VehicleRepository().Get(ctx, aggregate.VehicleID())
		if err != nil {
			return err
		}

		if aggregate.PlannedTotal().GreaterThan(tripVehicle.Capacity()) {
			return errs.NewCapacityExceededError(aggregate.PlannedTotal().Tons(), tripVehicle.Capacity().Tons())
		}
	}

	if err = tripRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
