package commands_test

import (
	"testing"

	"fleettrip/internal/core/application/usecases/commands"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeVehicleStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testVehicle := idleVehicle(t, 12)
	cmd, err := commands.NewChangeVehicleStatusCommand(testVehicle.ID(), vehicle.Maintenance)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("GetActiveByVehicle", ctx, testVehicle.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeVehicleStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, vehicle.Maintenance, testVehicle.Status())
	vehicleRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
}

func TestChangeVehicleStatusCommandHandler_Handle_VehicleOnActiveTrip(t *testing.T) {
	ctx := t.Context()

	testVehicle := onTripVehicle(t)
	activeTrip := restoredTrip(t, trip.Scheduled, kernel.NewUUID(), testVehicle.ID())

	cmd, err := commands.NewChangeVehicleStatusCommand(testVehicle.ID(), vehicle.Idle)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("GetActiveByVehicle", ctx, testVehicle.ID()).Return(activeTrip, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeVehicleStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	assert.Contains(t, err.Error(), "Vehicle is on trip")
	assert.Equal(t, vehicle.OnTrip, testVehicle.Status())
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
