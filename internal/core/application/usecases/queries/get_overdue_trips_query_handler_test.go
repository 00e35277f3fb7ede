package queries_test

import (
	"context"
	"testing"
	"time"

	"fleettrip/internal/adapters/out/postgres/driverrepo"
	"fleettrip/internal/adapters/out/postgres/triprepo"
	"fleettrip/internal/adapters/out/postgres/vehiclerepo"
	"fleettrip/internal/core/application/usecases/queries"
	"fleettrip/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOverdueTripsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOverdueTripsQueryHandler
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&triprepo.TripDTO{},
		&triprepo.CollectionDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOverdueTripsQueryHandler(db)
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE trips, collections, drivers, vehicles CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TestHandle_InProgressPastWindow_IsOverdue() {
	asOf := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Scheduled at 08:00 with a 90 minute window: overdue since 09:30
	tripID := suite.seedTrip("in_progress", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 90)

	query, err := queries.NewGetOverdueTripsQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(tripID.IsEqual(result[0].ID))
	suite.Equal("Budi Santoso", result[0].DriverName)
	suite.Equal(90, result[0].EstimatedDuration)
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TestHandle_InProgressWithinWindow_NotOverdue() {
	asOf := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	// Still inside the 90 minute window at 09:00
	suite.seedTrip("in_progress", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 90)

	query, err := queries.NewGetOverdueTripsQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TestHandle_OnlyInProgressTripsCount() {
	asOf := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	// Past their windows, but not started or already finished
	suite.seedTrip("scheduled", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 90)
	suite.seedTrip("completed", time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC), 90)

	query, err := queries.NewGetOverdueTripsQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TestHandle_MultipleOverdue_OldestFirst() {
	asOf := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	newer := suite.seedTrip("in_progress", time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), 60)
	older := suite.seedTrip("in_progress", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), 60)

	query, err := queries.NewGetOverdueTripsQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(older.IsEqual(result[0].ID), "Oldest overdue trip should come first")
	suite.True(newer.IsEqual(result[1].ID))
}

func (suite *GetOverdueTripsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOverdueTripsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOverdueTripsQuery constructor")
}

// seedTrip inserts a trip with fresh driver and vehicle rows and returns
// the trip identifier.
func (suite *GetOverdueTripsQueryHandlerTestSuite) seedTrip(
	status string,
	scheduledDate time.Time,
	estimatedDuration int,
) kernel.UUID {
	driverID := kernel.NewUUID()
	err := suite.db.Create(&driverrepo.DriverDTO{
		ID:            driverID.Bytes(),
		Name:          "Budi Santoso",
		LicenseNumber: "SIM-7781",
		PhoneNumber:   "+62-811-220-341",
		Status:        "on_trip",
	}).Error
	suite.Require().NoError(err)

	vehicleID := kernel.NewUUID()
	err = suite.db.Create(&vehiclerepo.VehicleDTO{
		ID:          vehicleID.Bytes(),
		PlateNumber: "BG " + vehicleID.String()[:8],
		Type:        "truck",
		Capacity:    12,
		Status:      "on_trip",
	}).Error
	suite.Require().NoError(err)

	tripID := kernel.NewUUID()
	err = suite.db.Create(&triprepo.TripDTO{
		ID:                tripID.Bytes(),
		VehicleID:         vehicleID.Bytes(),
		DriverID:          driverID.Bytes(),
		ScheduledDate:     scheduledDate,
		Status:            status,
		EstimatedDuration: estimatedDuration,
	}).Error
	suite.Require().NoError(err)

	return tripID
}

func TestGetOverdueTripsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverdueTripsQueryHandlerTestSuite))
}
