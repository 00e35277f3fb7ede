package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"fleettrip/cmd"
	httpadapter "fleettrip/internal/adapters/in/http"
	"fleettrip/internal/adapters/out/postgres/driverrepo"
	"fleettrip/internal/adapters/out/postgres/millrepo"
	"fleettrip/internal/adapters/out/postgres/triprepo"
	"fleettrip/internal/adapters/out/postgres/vehiclerepo"
	"fleettrip/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		root.CreateGetOverdueTripsQueryHandler(),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&millrepo.MillDTO{},
		&triprepo.TripDTO{},
		&triprepo.CollectionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		root.CreateCreateDriverCommandHandler(),
		root.CreateCreateVehicleCommandHandler(),
		root.CreateCreateMillCommandHandler(),
		root.CreateCreateTripCommandHandler(),
		root.CreateChangeTripStatusCommandHandler(),
		root.CreateEditTripCommandHandler(),
		root.CreateDeleteTripCommandHandler(),
		root.CreateChangeDriverStatusCommandHandler(),
		root.CreateChangeVehicleStatusCommandHandler(),
		root.CreateAssignVehicleDriverCommandHandler(),
		root.CreateEditDriverCommandHandler(),
		root.CreateDeleteDriverCommandHandler(),
		root.CreateEditVehicleCommandHandler(),
		root.CreateDeleteVehicleCommandHandler(),
		root.CreateEditMillCommandHandler(),
		root.CreateDeleteMillCommandHandler(),
		root.CreateGetAllTripsQueryHandler(),
		root.CreateGetTripByIDQueryHandler(),
		root.CreateGetAllDriversQueryHandler(),
		root.CreateGetAllVehiclesQueryHandler(),
		root.CreateGetAllMillsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
