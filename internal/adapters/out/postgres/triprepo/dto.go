// Package triprepo provides data transfer objects and mapping functions for trip persistence.
// This package implements the repository pattern for the trip domain aggregate, handling
// the conversion between domain entities and database representations. Collection line
// items are persisted as child rows of their owning trip and never independently.
package triprepo

import (
	"time"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// Status is stored as its lowercase wire string; the index on status and
// scheduled_date serves the active-trip and overdue lookups.
type TripDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ScheduledDate     time.Time       `gorm:"type:timestamptz;not null;index"`
	Status            string          `gorm:"type:varchar(16);not null;index"`
	EstimatedDuration int             `gorm:"type:int;not null"`
	Collections       []CollectionDTO `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for trip entities.
// Overrides GORM's default naming convention to use "trips".
func (TripDTO) TableName() string {
	return "trips"
}

// CollectionDTO represents the database structure for persisting collection line items.
// Links to its owning trip via foreign key and references the pickup mill.
type CollectionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MillID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Collected float64   `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for collection entities.
// Overrides GORM's default naming convention to use "collections".
func (CollectionDTO) TableName() string {
	return "collections"
}

// fromDomain converts a trip domain aggregate to its database representation.
// Maps all aggregate entities including collection line items.
func fromDomain(trip *trip.Trip) TripDTO {
	tripID := trip.ID().Bytes()
	collections := make([]CollectionDTO, 0, len(trip.Collections()))

	for _, c := range trip.Collections() {
		collections = append(collections, CollectionDTO{
			ID:        c.ID().Bytes(),
			TripID:    tripID,
			MillID:    c.MillID().Bytes(),
			Collected: c.Collected().Tons(),
		})
	}

	return TripDTO{
		ID:                tripID,
		VehicleID:         trip.VehicleID().Bytes(),
		DriverID:          trip.DriverID().Bytes(),
		ScheduledDate:     trip.ScheduledDate(),
		Status:            trip.Status().String(),
		EstimatedDuration: trip.EstimatedDuration(),
		Collections:       collections,
	}
}

// toDomain converts a database DTO to a trip domain aggregate.
// Reconstructs the complete aggregate including all collections using RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := trip.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	collections := make([]*trip.Collection, 0, len(dto.Collections))
	for _, cDto := range dto.Collections {
		c, cErr := collectionToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		collections = append(collections, c)
	}

	return trip.RestoreTrip(id, vehicleID, driverID, dto.ScheduledDate, status, dto.EstimatedDuration, collections)
}

// collectionToDomain converts a collection DTO to its domain entity.
// Uses RestoreCollection to reconstruct the line item with its persisted state.
func collectionToDomain(dto CollectionDTO) (*trip.Collection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	millID, err := kernel.UUIDFromBytes(dto.MillID[:])
	if err != nil {
		return nil, err
	}

	collected, err := kernel.NewQuantity(dto.Collected)
	if err != nil {
		return nil, err
	}

	return trip.RestoreCollection(id, tripID, millID, collected)
}
