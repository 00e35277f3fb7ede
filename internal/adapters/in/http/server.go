// Package http provides the inbound HTTP adapter for the fleet trip service.
// Handlers stay thin: they bind request bodies, construct commands or queries,
// delegate to the application layer, and translate domain errors to HTTP codes.
package http

import (
	"errors"
	"net/http"

	"fleettrip/internal/core/application/usecases/commands"
	"fleettrip/internal/core/application/usecases/queries"
	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDriverHandler        commands.CreateDriverCommandHandler
	createVehicleHandler       commands.CreateVehicleCommandHandler
	createMillHandler          commands.CreateMillCommandHandler
	createTripHandler          commands.CreateTripCommandHandler
	changeTripStatusHandler    commands.ChangeTripStatusCommandHandler
	editTripHandler            commands.EditTripCommandHandler
	deleteTripHandler          commands.DeleteTripCommandHandler
	changeDriverStatusHandler  commands.ChangeDriverStatusCommandHandler
	changeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler
	assignVehicleDriverHandler commands.AssignVehicleDriverCommandHandler
	editDriverHandler          commands.EditDriverCommandHandler
	deleteDriverHandler        commands.DeleteDriverCommandHandler
	editVehicleHandler         commands.EditVehicleCommandHandler
	deleteVehicleHandler       commands.DeleteVehicleCommandHandler
	editMillHandler            commands.EditMillCommandHandler
	deleteMillHandler          commands.DeleteMillCommandHandler

	// Query handlers
	getAllTripsHandler    queries.GetAllTripsQueryHandler
	getTripByIDHandler    queries.GetTripByIDQueryHandler
	getAllDriversHandler  queries.GetAllDriversQueryHandler
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler
	getAllMillsHandler    queries.GetAllMillsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDriverHandler commands.CreateDriverCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	createMillHandler commands.CreateMillCommandHandler,
	createTripHandler commands.CreateTripCommandHandler,
	changeTripStatusHandler commands.ChangeTripStatusCommandHandler,
	editTripHandler commands.EditTripCommandHandler,
	deleteTripHandler commands.DeleteTripCommandHandler,
	changeDriverStatusHandler commands.ChangeDriverStatusCommandHandler,
	changeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler,
	assignVehicleDriverHandler commands.AssignVehicleDriverCommandHandler,
	editDriverHandler commands.EditDriverCommandHandler,
	deleteDriverHandler commands.DeleteDriverCommandHandler,
	editVehicleHandler commands.EditVehicleCommandHandler,
	deleteVehicleHandler commands.DeleteVehicleCommandHandler,
	editMillHandler commands.EditMillCommandHandler,
	deleteMillHandler commands.DeleteMillCommandHandler,
	getAllTripsHandler queries.GetAllTripsQueryHandler,
	getTripByIDHandler queries.GetTripByIDQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getAllMillsHandler queries.GetAllMillsQueryHandler,
) *Server {
	return &Server{
		createDriverHandler:        createDriverHandler,
		createVehicleHandler:       createVehicleHandler,
		createMillHandler:          createMillHandler,
		createTripHandler:          createTripHandler,
		changeTripStatusHandler:    changeTripStatusHandler,
		editTripHandler:            editTripHandler,
		deleteTripHandler:          deleteTripHandler,
		changeDriverStatusHandler:  changeDriverStatusHandler,
		changeVehicleStatusHandler: changeVehicleStatusHandler,
		assignVehicleDriverHandler: assignVehicleDriverHandler,
		editDriverHandler:          editDriverHandler,
		deleteDriverHandler:        deleteDriverHandler,
		editVehicleHandler:         editVehicleHandler,
		deleteVehicleHandler:       deleteVehicleHandler,
		editMillHandler:            editMillHandler,
		deleteMillHandler:          deleteMillHandler,
		getAllTripsHandler:         getAllTripsHandler,
		getTripByIDHandler:         getTripByIDHandler,
		getAllDriversHandler:       getAllDriversHandler,
		getAllVehiclesHandler:      getAllVehiclesHandler,
		getAllMillsHandler:         getAllMillsHandler,
	}
}

// RegisterRoutes wires all fleet trip endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.PUT("/drivers/:driverId", s.EditDriver)
	api.DELETE("/drivers/:driverId", s.DeleteDriver)
	api.PATCH("/drivers/:driverId/status", s.ChangeDriverStatus)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.GetVehicles)
	api.PUT("/vehicles/:vehicleId", s.EditVehicle)
	api.DELETE("/vehicles/:vehicleId", s.DeleteVehicle)
	api.PATCH("/vehicles/:vehicleId/status", s.ChangeVehicleStatus)
	api.PATCH("/vehicles/:vehicleId/assign-driver", s.AssignVehicleDriver)

	api.POST("/mills", s.CreateMill)
	api.GET("/mills", s.GetMills)
	api.PUT("/mills/:millId", s.EditMill)
	api.DELETE("/mills/:millId", s.DeleteMill)

	api.POST("/trips", s.CreateTrip)
	api.GET("/trips", s.GetTrips)
	api.GET("/trips/:tripId", s.GetTripByID)
	api.PUT("/trips/:tripId", s.EditTrip)
	api.PATCH("/trips/:tripId/status", s.ChangeTripStatus)
	api.DELETE("/trips/:tripId", s.DeleteTrip)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, body.Name, body.LicenseNumber, body.PhoneNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: driverID.String()})
}

// ChangeDriverStatus handles PATCH /api/v1/drivers/:driverId/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := driver.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeDriverStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers handles GET /api/v1/drivers - retrieves the driver roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			ID:            d.ID.String(),
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			PhoneNumber:   d.PhoneNumber,
			Status:        d.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditDriver handles PUT /api/v1/drivers/:driverId - updates identity fields.
func (s *Server) EditDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	var body EditDriver
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditDriverCommand(driverID, body.Name, body.LicenseNumber, body.PhoneNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.editDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDriver handles DELETE /api/v1/drivers/:driverId.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a new vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	capacity, err := kernel.NewQuantity(body.Capacity)
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := optionalUUID(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, body.PlateNumber, body.Type, capacity, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: vehicleID.String()})
}

// ChangeVehicleStatus handles PATCH /api/v1/vehicles/:vehicleId/status.
func (s *Server) ChangeVehicleStatus(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := vehicle.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(vehicleID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeVehicleStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignVehicleDriver handles PATCH /api/v1/vehicles/:vehicleId/assign-driver.
func (s *Server) AssignVehicleDriver(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var body AssignDriver
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := optionalUUID(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignVehicleDriverCommand(vehicleID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignVehicleDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVehicles handles GET /api/v1/vehicles - retrieves the vehicle fleet.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		row := Vehicle{
			ID:          v.ID.String(),
			PlateNumber: v.PlateNumber,
			Type:        v.Type,
			Capacity:    v.Capacity,
			DriverName:  v.DriverName,
			Status:      v.Status,
		}
		if v.DriverID != nil {
			id := v.DriverID.String()
			row.DriverID = &id
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditVehicle handles PUT /api/v1/vehicles/:vehicleId - updates registration
// fields. The regular driver and status have dedicated PATCH endpoints.
func (s *Server) EditVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var body EditVehicle
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var capacity *kernel.Quantity
	if body.Capacity != nil {
		q, err := kernel.NewQuantity(*body.Capacity)
		if err != nil {
			return writeError(ctx, err)
		}
		capacity = &q
	}

	cmd, err := commands.NewEditVehicleCommand(vehicleID, body.PlateNumber, body.Type, capacity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.editVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:vehicleId.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateMill handles POST /api/v1/mills - registers a new mill.
func (s *Server) CreateMill(ctx echo.Context) error {
	var body NewMill
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	production, err := kernel.NewQuantity(body.AvgDailyProduction)
	if err != nil {
		return writeError(ctx, err)
	}

	location, err := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	millID := kernel.NewUUID()
	cmd, err := commands.NewCreateMillCommand(millID, body.Name, body.ContactPerson, body.PhoneNumber,
		production, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createMillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: millID.String()})
}

// GetMills handles GET /api/v1/mills - retrieves the mill registry.
func (s *Server) GetMills(ctx echo.Context) error {
	mills, err := s.getAllMillsHandler.Handle(ctx.Request().Context(), queries.NewGetAllMillsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Mill, len(mills))
	for i, m := range mills {
		response[i] = Mill{
			ID:                 m.ID.String(),
			Name:               m.Name,
			ContactPerson:      m.ContactPerson,
			PhoneNumber:        m.PhoneNumber,
			AvgDailyProduction: m.AvgDailyProduction,
			Location:           GeoPoint{Lat: m.Lat, Lng: m.Lng},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditMill handles PUT /api/v1/mills/:millId - updates reference data.
func (s *Server) EditMill(ctx echo.Context) error {
	millID, err := kernel.UUIDFromString(ctx.Param("millId"))
	if err != nil {
		return badRequest(ctx, "Invalid mill id")
	}

	var body EditMill
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var production *kernel.Quantity
	if body.AvgDailyProduction != nil {
		q, err := kernel.NewQuantity(*body.AvgDailyProduction)
		if err != nil {
			return writeError(ctx, err)
		}
		production = &q
	}

	var location *kernel.GeoPoint
	if body.Location != nil {
		point, err := kernel.NewGeoPoint(body.Location.Lat, body.Location.Lng)
		if err != nil {
			return writeError(ctx, err)
		}
		location = &point
	}

	cmd, err := commands.NewEditMillCommand(millID, body.Name, body.ContactPerson, body.PhoneNumber,
		production, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.editMillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMill handles DELETE /api/v1/mills/:millId.
func (s *Server) DeleteMill(ctx echo.Context) error {
	millID, err := kernel.UUIDFromString(ctx.Param("millId"))
	if err != nil {
		return badRequest(ctx, "Invalid mill id")
	}

	cmd, err := commands.NewDeleteMillCommand(millID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteMillHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTrip handles POST /api/v1/trips - schedules a new collection trip.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var body NewTrip
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	items, err := collectionItems(body.Collections)
	if err != nil {
		return writeError(ctx, err)
	}

	tripID := kernel.NewUUID()
	cmd, err := commands.NewCreateTripCommand(tripID, vehicleID, driverID,
		body.ScheduledDate, body.EstimatedDuration, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: tripID.String()})
}

// GetTrips handles GET /api/v1/trips - retrieves trips, optionally filtered
// by ?status=.
func (s *Server) GetTrips(ctx echo.Context) error {
	var statusFilter *trip.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := trip.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAllTripsQuery(statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	trips, err := s.getAllTripsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Trip, len(trips))
	for i, t := range trips {
		collections := make([]TripCollection, len(t.Collections))
		for j, c := range t.Collections {
			collections[j] = TripCollection{
				ID:        c.ID.String(),
				MillID:    c.MillID.String(),
				MillName:  c.MillName,
				Collected: c.Collected,
			}
		}

		response[i] = Trip{
			ID:                t.ID.String(),
			VehicleID:         t.VehicleID.String(),
			PlateNumber:       t.PlateNumber,
			DriverID:          t.DriverID.String(),
			DriverName:        t.DriverName,
			ScheduledDate:     t.ScheduledDate,
			Status:            t.Status,
			EstimatedDuration: t.EstimatedDuration,
			PlannedTotal:      t.PlannedTotal,
			Collections:       collections,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTripByID handles GET /api/v1/trips/:tripId - retrieves one trip with
// its collection line items.
func (s *Server) GetTripByID(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id")
	}

	query, err := queries.NewGetTripByIDQuery(tripID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getTripByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	collections := make([]TripCollection, len(detail.Collections))
	for i, c := range detail.Collections {
		collections[i] = TripCollection{
			ID:        c.ID.String(),
			MillID:    c.MillID.String(),
			MillName:  c.MillName,
			Collected: c.Collected,
		}
	}

	return ctx.JSON(http.StatusOK, Trip{
		ID:                detail.ID.String(),
		VehicleID:         detail.VehicleID.String(),
		PlateNumber:       detail.PlateNumber,
		DriverID:          detail.DriverID.String(),
		DriverName:        detail.DriverName,
		ScheduledDate:     detail.ScheduledDate,
		Status:            detail.Status,
		EstimatedDuration: detail.EstimatedDuration,
		PlannedTotal:      detail.PlannedTotal,
		Collections:       collections,
	})
}

// EditTrip handles PUT /api/v1/trips/:tripId - edits an active trip's plan.
func (s *Server) EditTrip(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id")
	}

	var body EditTrip
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var items []commands.CollectionItem
	if body.Collections != nil {
		if items, err = collectionItems(body.Collections); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewEditTripCommand(tripID, body.ScheduledDate, body.EstimatedDuration, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.editTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeTripStatus handles PATCH /api/v1/trips/:tripId/status.
func (s *Server) ChangeTripStatus(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id")
	}

	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trip.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeTripStatusCommand(tripID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeTripStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTrip handles DELETE /api/v1/trips/:tripId.
func (s *Server) DeleteTrip(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripId"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id")
	}

	cmd, err := commands.NewDeleteTripCommand(tripID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// collectionItems converts wire collections to command items.
func collectionItems(collections []NewCollection) ([]commands.CollectionItem, error) {
	items := make([]commands.CollectionItem, 0, len(collections))
	for _, c := range collections {
		millID, err := kernel.UUIDFromString(c.MillID)
		if err != nil {
			return nil, err
		}

		quantity, err := kernel.NewQuantity(c.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, commands.CollectionItem{MillID: millID, Quantity: quantity})
	}
	return items, nil
}

// optionalUUID parses a nullable identifier from the wire format.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// writeError translates domain errors into HTTP responses.
// Not-found maps to 404, resource conflicts to 409, validation and capacity
// failures to 400; anything else is a 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrResourceConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
