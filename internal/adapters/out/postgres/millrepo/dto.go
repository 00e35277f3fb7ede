// Package millrepo provides data transfer objects and mapping functions for mill persistence.
// This package implements the repository pattern for the mill domain aggregate, handling
// the conversion between domain entities and database representations.
package millrepo

import (
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/mill"

	"github.com/google/uuid"
)

// MillDTO represents the database structure for persisting mill aggregates.
type MillDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name               string      `gorm:"type:varchar(255);not null"`
	ContactPerson      string      `gorm:"type:varchar(255);not null"`
	PhoneNumber        string      `gorm:"type:varchar(32);not null"`
	AvgDailyProduction float64     `gorm:"type:numeric(10,2);not null"`
	Location           GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for mill entities.
// Overrides GORM's default naming convention to use "mills".
func (MillDTO) TableName() string {
	return "mills"
}

// GeoPointDTO represents the embedded pickup coordinates within the mill table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:numeric(9,6)"`
	Lng float64 `gorm:"type:numeric(9,6)"`
}

// fromDomain converts a mill domain aggregate to its database representation.
func fromDomain(mill *mill.Mill) MillDTO {
	return MillDTO{
		ID:                 mill.ID().Bytes(),
		Name:               mill.Name(),
		ContactPerson:      mill.ContactPerson(),
		PhoneNumber:        mill.PhoneNumber(),
		AvgDailyProduction: mill.AvgDailyProduction().Tons(),
		Location: GeoPointDTO{
			Lat: mill.Location().Lat(),
			Lng: mill.Location().Lng(),
		},
	}
}

// toDomain converts a database DTO to a mill domain aggregate.
func toDomain(dto MillDTO) (*mill.Mill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	production, err := kernel.NewQuantity(dto.AvgDailyProduction)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return mill.RestoreMill(id, dto.Name, dto.ContactPerson, dto.PhoneNumber, production, location)
}
