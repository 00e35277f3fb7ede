// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The plate number carries a unique constraint; capacity is stored in tons.
type VehicleDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PlateNumber string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type        string     `gorm:"type:varchar(64);not null"`
	Capacity    float64    `gorm:"type:numeric(10,2);not null"`
	DriverID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
// Maps the optional regular-driver assignment to a nullable foreign key.
func fromDomain(vehicle *vehicle.Vehicle) VehicleDTO {
	var driverID *uuid.UUID
	if id := vehicle.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return VehicleDTO{
		ID:          vehicle.ID().Bytes(),
		PlateNumber: vehicle.PlateNumber(),
		Type:        vehicle.Type(),
		Capacity:    vehicle.Capacity().Tons(),
		DriverID:    driverID,
		Status:      vehicle.Status().String(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	capacity, err := kernel.NewQuantity(dto.Capacity)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.PlateNumber, dto.Type, capacity, driverID, status)
}
