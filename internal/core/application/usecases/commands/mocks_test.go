package commands_test

import (
	"context"

	"fleettrip/internal/core/application/usecases/commands"
	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/mill"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMillRepository struct{ mock.Mock }

func (m *MockMillRepository) Add(ctx context.Context, aggregate *mill.Mill) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMillRepository) Update(ctx context.Context, aggregate *mill.Mill) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMillRepository) Get(ctx context.Context, id kernel.UUID) (*mill.Mill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mill.Mill), args.Error(1)
}

func (m *MockMillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface in the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) MillRepository() ports.MillRepository {
	args := m.Called()
	return args.Get(0).(ports.MillRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockMillUoWFactory struct{ mock.Mock }

func (m *MockMillUoWFactory) Create() commands.MillUoW {
	args := m.Called()
	return args.Get(0).(commands.MillUoW)
}
