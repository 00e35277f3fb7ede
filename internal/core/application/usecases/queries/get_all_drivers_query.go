package queries

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves the driver roster, ordered by name.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all drivers.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse is one row of the driver roster read model.
type GetAllDriversQueryResponse struct {
	ID            kernel.UUID
	Name          string
	LicenseNumber string
	PhoneNumber   string
	Status        string
}
