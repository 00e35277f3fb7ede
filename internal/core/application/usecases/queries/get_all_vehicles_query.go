package queries

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves the vehicle fleet, ordered by plate number.
// Each row resolves the regular driver's name when one is assigned.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to retrieve all vehicles.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is one row of the vehicle fleet read model.
// DriverID and DriverName are nil when no regular driver is assigned.
type GetAllVehiclesQueryResponse struct {
	ID          kernel.UUID
	PlateNumber string
	Type        string
	Capacity    float64
	DriverID    *kernel.UUID
	DriverName  *string
	Status      string
}
