package queries

import (
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/pkg/guard"
)

var ErrGetAllMillsQueryIsNotConstructed = errors.New(
	"GetAllMillsQuery must be created via NewGetAllMillsQuery constructor",
)

// GetAllMillsQuery retrieves the mill registry, ordered by name.
type GetAllMillsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMillsQuery creates a query to retrieve all mills.
func NewGetAllMillsQuery() GetAllMillsQuery {
	return GetAllMillsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMillsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMillsQueryIsNotConstructed)
}

// GetAllMillsQueryResponse is one row of the mill registry read model.
type GetAllMillsQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	ContactPerson      string
	PhoneNumber        string
	AvgDailyProduction float64
	Lat                float64
	Lng                float64
}
