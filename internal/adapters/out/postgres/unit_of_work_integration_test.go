package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fleettrip/internal/adapters/out/postgres"
	"fleettrip/internal/adapters/out/postgres/driverrepo"
	"fleettrip/internal/adapters/out/postgres/millrepo"
	"fleettrip/internal/adapters/out/postgres/triprepo"
	"fleettrip/internal/adapters/out/postgres/vehiclerepo"
	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the GORM-based
// Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&millrepo.MillDTO{},
		&triprepo.TripDTO{},
		&triprepo.CollectionDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE trips, collections, drivers, vehicles, mills").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow1.VehicleRepository(), "First instance should provide vehicle repository")
	suite.NotNil(uow1.MillRepository(), "First instance should provide mill repository")
	suite.NotNil(uow1.TripRepository(), "First instance should provide trip repository")
	suite.NotNil(uow2.TripRepository(), "Second instance should provide trip repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_TripCreationWorkflow tests the full trip creation workflow:
// the trip, the driver status, and the vehicle status are persisted atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TripCreationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver()
	testVehicle := createTestVehicle()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.VehicleRepository().Add(ctx, testVehicle)
	suite.Require().NoError(err)

	testTrip := createTestTrip(testDriver.ID(), testVehicle.ID())
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	// Lock both resources as part of the same transaction
	err = testDriver.ChangeStatus(driver.OnTrip)
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	err = testVehicle.ChangeStatus(vehicle.OnTrip)
	suite.Require().NoError(err)
	err = uow.VehicleRepository().Update(ctx, testVehicle)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify everything persisted with a fresh unit of work
	newUow := suite.factory.Create()

	retrievedTrip, err := newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(trip.Scheduled, retrievedTrip.Status())
	suite.Len(retrievedTrip.Collections(), 1)

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.OnTrip, retrievedDriver.Status())

	retrievedVehicle, err := newUow.VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.OnTrip, retrievedVehicle.Status())

	active, err := newUow.TripRepository().GetActiveByDriver(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(testTrip.ID().IsEqual(active.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver()
	testVehicle := createTestVehicle()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.VehicleRepository().Add(ctx, testVehicle)
	suite.Require().NoError(err)

	testTrip := createTestTrip(testDriver.ID(), testVehicle.ID())
	err = uow.TripRepository().Add(ctx, testTrip)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing persisted after rollback
	newUow := suite.factory.Create()

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")

	_, err = newUow.VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().Error(err, "Vehicle should not exist after rollback")

	_, err = newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().Error(err, "Trip should not exist after rollback")
}

// TestUnitOfWork_TripCompletionWorkflow tests completing a trip and releasing
// its resources within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TripCompletionWorkflow() {
	ctx := context.Background()

	// Seed an on-trip state
	setupUow := suite.factory.Create()
	testDriver := createTestDriver()
	testVehicle := createTestVehicle()
	suite.Require().NoError(testDriver.ChangeStatus(driver.OnTrip))
	suite.Require().NoError(testVehicle.ChangeStatus(vehicle.OnTrip))

	suite.Require().NoError(setupUow.DriverRepository().Add(ctx, testDriver))
	suite.Require().NoError(setupUow.VehicleRepository().Add(ctx, testVehicle))

	testTrip := createTestTrip(testDriver.ID(), testVehicle.ID())
	suite.Require().NoError(testTrip.ChangeStatus(trip.InProgress))
	suite.Require().NoError(setupUow.TripRepository().Add(ctx, testTrip))

	// Complete the trip and free both resources atomically
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testTrip.ChangeStatus(trip.Completed))
	suite.Require().NoError(uow.TripRepository().Update(ctx, testTrip))

	suite.Require().NoError(testDriver.ChangeStatus(driver.Available))
	suite.Require().NoError(uow.DriverRepository().Update(ctx, testDriver))

	suite.Require().NoError(testVehicle.ChangeStatus(vehicle.Idle))
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, testVehicle))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify final state
	newUow := suite.factory.Create()

	retrievedTrip, err := newUow.TripRepository().Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(trip.Completed, retrievedTrip.Status())

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Available, retrievedDriver.Status())

	retrievedVehicle, err := newUow.VehicleRepository().Get(ctx, testVehicle.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.Idle, retrievedVehicle.Status())

	// The completed trip no longer counts as active
	_, err = newUow.TripRepository().GetActiveByDriver(ctx, testDriver.ID())
	suite.Require().Error(err, "Completed trip should not be active")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	driver1 := createTestDriver()
	driver2 := createTestDriver()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.DriverRepository().Add(ctx, driver1)
	suite.Require().NoError(err)

	err = uow2.DriverRepository().Add(ctx, driver2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "UOW1 should see driver1")

	_, err = uow1.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "UOW1 should not see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().NoError(err, "UOW2 should see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().Error(err, "UOW2 should not see driver1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only driver1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "Driver1 should persist after commit")

	_, err = newUow.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "Driver2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := createTestDriver()

	// Add driver without beginning transaction (should auto-commit)
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	retrievedDriver, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(testDriver.ID().IsEqual(retrievedDriver.ID()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedDriver, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(testDriver.ID().IsEqual(retrievedDriver.ID()))
}

// createTestDriver creates a valid available driver for testing purposes.
func createTestDriver() *driver.Driver {
	id := kernel.NewUUID()
	testDriver, _ := driver.NewDriver(id, "Budi Santoso", "SIM-7781", "+62-811-220-341")
	return testDriver
}

// createTestVehicle creates a valid idle vehicle for testing purposes.
// Plate numbers carry a unique constraint, so each call generates a fresh one.
func createTestVehicle() *vehicle.Vehicle {
	id := kernel.NewUUID()
	capacity, _ := kernel.NewQuantity(12)
	plate := "BG " + id.String()[:8]
	testVehicle, _ := vehicle.NewVehicle(id, plate, "truck", capacity, nil)
	return testVehicle
}

// createTestTrip creates a valid scheduled trip with a single collection.
func createTestTrip(driverID, vehicleID kernel.UUID) *trip.Trip {
	tripID := kernel.NewUUID()
	quantity, _ := kernel.NewQuantity(4.5)
	collection, _ := trip.NewCollection(kernel.NewUUID(), tripID, kernel.NewUUID(), quantity)

	testTrip, _ := trip.NewTrip(tripID, vehicleID, driverID,
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 90, []*trip.Collection{collection})
	return testTrip
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
