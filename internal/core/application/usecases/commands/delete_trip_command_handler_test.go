package commands_test

import (
	"testing"

	"fleettrip/internal/core/application/usecases/commands"
	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteTripCommandHandler_Handle_ActiveTripReleasesResources(t *testing.T) {
	ctx := t.Context()

	testDriver := onTripDriver(t)
	testVehicle := onTripVehicle(t)
	testTrip := restoredTrip(t, trip.Scheduled, testDriver.ID(), testVehicle.ID())

	cmd, err := commands.NewDeleteTripCommand(testTrip.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		tripRepo.On("Get", ctx, testTrip.ID()).Return(testTrip, nil).Once(),
		tripRepo.On("Delete", ctx, testTrip.ID()).Return(nil).Once(),
		tripRepo.On("GetActiveByDriver", ctx, testDriver.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		tripRepo.On("GetActiveByVehicle", ctx, testVehicle.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.Available, testDriver.Status())
	assert.Equal(t, vehicle.Idle, testVehicle.Status())
	tripRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
}

func TestDeleteTripCommandHandler_Handle_TerminalTripKeepsResources(t *testing.T) {
	ctx := t.Context()

	testDriver := availableDriver(t)
	testVehicle := idleVehicle(t, 12)
	testTrip := restoredTrip(t, trip.Completed, testDriver.ID(), testVehicle.ID())

	cmd, err := commands.NewDeleteTripCommand(testTrip.ID())
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		tripRepo.On("Get", ctx, testTrip.ID()).Return(testTrip, nil).Once(),
		tripRepo.On("Delete", ctx, testTrip.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	tripRepo.AssertNotCalled(t, "GetActiveByDriver", mock.Anything, mock.Anything)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteTripCommandHandler_Handle_UnknownTrip(t *testing.T) {
	ctx := t.Context()

	tripID := kernel.NewUUID()
	cmd, err := commands.NewDeleteTripCommand(tripID)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		tripRepo.On("Get", ctx, tripID).Return(nil, errs.NewObjectNotFoundError("tripID", tripID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteTripCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	// Deleting the same trip twice surfaces not-found on the second call.
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	tripRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
