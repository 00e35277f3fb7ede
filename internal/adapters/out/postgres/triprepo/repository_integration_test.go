package triprepo_test

import (
	"context"
	"testing"
	"time"

	"fleettrip/internal/adapters/out/postgres/triprepo"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TripRepositoryIntegrationTestSuite provides integration tests for TripRepository
// using PostgreSQL containers to verify database persistence behavior.
type TripRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *triprepo.GormTripRepository
	tracker    *MockAggregateTracker
}

func (suite *TripRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&triprepo.TripDTO{}, &triprepo.CollectionDTO{}))
}

func (suite *TripRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trips, collections").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = triprepo.NewGormTripRepository(suite.db, suite.tracker)
}

func (suite *TripRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TripRepositoryIntegrationTestSuite) TestAdd_ValidTrip_Success() {
	ctx := context.Background()

	testTrip := suite.createTestTrip(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 4.5, 3.0)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Once()

	err := suite.repository.Add(ctx, testTrip)
	suite.Require().NoError(err)

	suite.assertTripCount(1)
	suite.assertCollectionCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestGet_ExistingTrip_RoundTrip() {
	ctx := context.Background()

	scheduledDate := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	testTrip := suite.createTestTrip(scheduledDate, 4.5, 3.0)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	retrieved, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)

	suite.True(testTrip.ID().IsEqual(retrieved.ID()))
	suite.True(testTrip.DriverID().IsEqual(retrieved.DriverID()))
	suite.True(testTrip.VehicleID().IsEqual(retrieved.VehicleID()))
	suite.Equal(trip.Scheduled, retrieved.Status())
	suite.Equal(testTrip.EstimatedDuration(), retrieved.EstimatedDuration())
	suite.True(retrieved.ScheduledDate().UTC().Equal(scheduledDate))
	suite.Len(retrieved.Collections(), 2)
	suite.InDelta(7.5, retrieved.PlannedTotal().Tons(), 0.001)
}

func (suite *TripRepositoryIntegrationTestSuite) TestGet_NonExistentTrip_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdate_ReplacesCollectionsWholesale() {
	ctx := context.Background()

	testTrip := suite.createTestTrip(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 4.5, 3.0)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	// Replace the two original line items with a single new one
	replacement := suite.createCollections(testTrip.ID(), 6.0)
	suite.Require().NoError(testTrip.ReplaceCollections(replacement))
	suite.Require().NoError(suite.repository.Update(ctx, testTrip))

	retrieved, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Len(retrieved.Collections(), 1)
	suite.InDelta(6.0, retrieved.PlannedTotal().Tons(), 0.001)

	// No orphaned collection rows may remain
	suite.assertCollectionCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testTrip := suite.createTestTrip(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 4.5)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	suite.Require().NoError(testTrip.ChangeStatus(trip.InProgress))
	suite.Require().NoError(suite.repository.Update(ctx, testTrip))

	retrieved, err := suite.repository.Get(ctx, testTrip.ID())
	suite.Require().NoError(err)
	suite.Equal(trip.InProgress, retrieved.Status())
}

func (suite *TripRepositoryIntegrationTestSuite) TestUpdate_NonExistentTrip_ReturnsNotFound() {
	ctx := context.Background()

	testTrip := suite.createTestTrip(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 4.5)

	err := suite.repository.Update(ctx, testTrip)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetActiveByDriver_ReturnsMostRecentActive() {
	ctx := context.Background()

	driverID := kernel.NewUUID()

	earlier := suite.createTestTripFor(driverID, kernel.NewUUID(),
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), 2.0)
	later := suite.createTestTripFor(driverID, kernel.NewUUID(),
		time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC), 3.0)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, earlier))
	suite.Require().NoError(suite.repository.Add(ctx, later))

	active, err := suite.repository.GetActiveByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.True(later.ID().IsEqual(active.ID()), "Most recently scheduled active trip should win")
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetActiveByDriver_IgnoresTerminalTrips() {
	ctx := context.Background()

	driverID := kernel.NewUUID()

	completed := suite.createTestTripFor(driverID, kernel.NewUUID(),
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 2.0)
	suite.Require().NoError(completed.ChangeStatus(trip.InProgress))
	suite.Require().NoError(completed.ChangeStatus(trip.Completed))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	_, err := suite.repository.GetActiveByDriver(ctx, driverID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TripRepositoryIntegrationTestSuite) TestGetActiveByVehicle_FindsScheduledTrip() {
	ctx := context.Background()

	vehicleID := kernel.NewUUID()

	testTrip := suite.createTestTripFor(kernel.NewUUID(), vehicleID,
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 2.0)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	active, err := suite.repository.GetActiveByVehicle(ctx, vehicleID)
	suite.Require().NoError(err)
	suite.True(testTrip.ID().IsEqual(active.ID()))

	// A different vehicle has no active trip
	_, err = suite.repository.GetActiveByVehicle(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TripRepositoryIntegrationTestSuite) TestDelete_RemovesTripAndCollections() {
	ctx := context.Background()

	testTrip := suite.createTestTrip(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 4.5, 3.0)

	suite.tracker.On("TrackAggregate", testTrip.ID(), testTrip).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testTrip))

	err := suite.repository.Delete(ctx, testTrip.ID())
	suite.Require().NoError(err)

	suite.assertTripCount(0)
	suite.assertCollectionCount(0)

	// Deleting again reports not found
	err = suite.repository.Delete(ctx, testTrip.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestTrip creates a valid scheduled trip with one collection per quantity.
func (suite *TripRepositoryIntegrationTestSuite) createTestTrip(scheduledDate time.Time, tons ...float64) *trip.Trip {
	return suite.createTestTripFor(kernel.NewUUID(), kernel.NewUUID(), scheduledDate, tons...)
}

// createTestTripFor creates a valid scheduled trip bound to the given resources.
func (suite *TripRepositoryIntegrationTestSuite) createTestTripFor(
	driverID, vehicleID kernel.UUID,
	scheduledDate time.Time,
	tons ...float64,
) *trip.Trip {
	tripID := kernel.NewUUID()
	collections := suite.createCollections(tripID, tons...)

	testTrip, err := trip.NewTrip(tripID, vehicleID, driverID, scheduledDate, 90, collections)
	suite.Require().NoError(err)
	return testTrip
}

// createCollections builds one collection line item per quantity for the trip.
func (suite *TripRepositoryIntegrationTestSuite) createCollections(tripID kernel.UUID, tons ...float64) []*trip.Collection {
	collections := make([]*trip.Collection, 0, len(tons))
	for _, t := range tons {
		quantity, err := kernel.NewQuantity(t)
		suite.Require().NoError(err)

		c, err := trip.NewCollection(kernel.NewUUID(), tripID, kernel.NewUUID(), quantity)
		suite.Require().NoError(err)
		collections = append(collections, c)
	}
	return collections
}

func (suite *TripRepositoryIntegrationTestSuite) assertTripCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&triprepo.TripDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *TripRepositoryIntegrationTestSuite) assertCollectionCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&triprepo.CollectionDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestTripRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TripRepositoryIntegrationTestSuite))
}
