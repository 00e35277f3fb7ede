package queries_test

import (
	"context"
	"testing"
	"time"

	"fleettrip/internal/adapters/out/postgres/driverrepo"
	"fleettrip/internal/adapters/out/postgres/millrepo"
	"fleettrip/internal/adapters/out/postgres/triprepo"
	"fleettrip/internal/adapters/out/postgres/vehiclerepo"
	"fleettrip/internal/core/application/usecases/queries"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetTripByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetTripByIDQueryHandler
}

func (suite *GetTripByIDQueryHandlerTestSuite) SetupSuite() {
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
		&millrepo.MillDTO{},
		&triprepo.TripDTO{},
		&triprepo.CollectionDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetTripByIDQueryHandler(db)
}

func (suite *GetTripByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetTripByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE trips, collections, drivers, vehicles, mills CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetTripByIDQueryHandlerTestSuite) TestHandle_ExistingTrip_ReturnsDetailWithCollections() {
	tripID := suite.seedTripWithMills()

	query, err := queries.NewGetTripByIDQuery(tripID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(tripID.IsEqual(result.ID))
	suite.Equal("Budi Santoso", result.DriverName)
	suite.Equal("BG 8421 XA", result.PlateNumber)
	suite.Equal("scheduled", result.Status)
	suite.Equal(90, result.EstimatedDuration)
	suite.InDelta(7.5, result.PlannedTotal, 0.001)

	// Collections come back ordered by mill name
	suite.Require().Len(result.Collections, 2)
	suite.Equal("Air Sugihan Mill", result.Collections[0].MillName)
	suite.InDelta(3.0, result.Collections[0].Collected, 0.001)
	suite.Equal("Sungai Lilin Mill", result.Collections[1].MillName)
	suite.InDelta(4.5, result.Collections[1].Collected, 0.001)
}

func (suite *GetTripByIDQueryHandlerTestSuite) TestHandle_NonExistentTrip_ReturnsNotFound() {
	query, err := queries.NewGetTripByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTripByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTripByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetTripByIDQuery constructor")
}

// seedTripWithMills inserts a scheduled trip with two collections at named
// mills and returns the trip identifier.
func (suite *GetTripByIDQueryHandlerTestSuite) seedTripWithMills() kernel.UUID {
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
		PlateNumber: "BG 8421 XA",
		Type:        "truck",
		Capacity:    12,
		Status:      "on_trip",
	}).Error
	suite.Require().NoError(err)

	mills := []struct {
		name string
		tons float64
	}{
		{"Sungai Lilin Mill", 4.5},
		{"Air Sugihan Mill", 3.0},
	}

	tripID := kernel.NewUUID()
	err = suite.db.Create(&triprepo.TripDTO{
		ID:                tripID.Bytes(),
		VehicleID:         vehicleID.Bytes(),
		DriverID:          driverID.Bytes(),
		ScheduledDate:     time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
		Status:            "scheduled",
		EstimatedDuration: 90,
	}).Error
	suite.Require().NoError(err)

	for _, m := range mills {
		millID := kernel.NewUUID()
		err = suite.db.Create(&millrepo.MillDTO{
			ID:                 millID.Bytes(),
			Name:               m.name,
			ContactPerson:      "Pak Agus",
			PhoneNumber:        "+62-812-334-556",
			AvgDailyProduction: 8,
			Location:           millrepo.GeoPointDTO{Lat: -2.98, Lng: 104.75},
		}).Error
		suite.Require().NoError(err)

		err = suite.db.Create(&triprepo.CollectionDTO{
			ID:        kernel.NewUUID().Bytes(),
			TripID:    tripID.Bytes(),
			MillID:    millID.Bytes(),
			Collected: m.tons,
		}).Error
		suite.Require().NoError(err)
	}

	return tripID
}

func TestGetTripByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTripByIDQueryHandlerTestSuite))
}
