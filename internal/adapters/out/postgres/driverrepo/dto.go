// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"fleettrip/internal/core/domain/model/driver"
	"fleettrip/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Status is stored as its lowercase wire string so rows stay readable in SQL tooling.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	LicenseNumber string    `gorm:"type:varchar(64);not null"`
	PhoneNumber   string    `gorm:"type:varchar(32);not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(driver *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            driver.ID().Bytes(),
		Name:          driver.Name(),
		LicenseNumber: driver.LicenseNumber(),
		PhoneNumber:   driver.PhoneNumber(),
		Status:        driver.Status().String(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the complete aggregate including status using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseNumber, dto.PhoneNumber, status)
}
