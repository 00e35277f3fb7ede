package triprepo

import (
	"context"
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/trip"
	"fleettrip/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip with all its collections to the database.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trip to the database.
// The stored collection set is replaced wholesale: edits may add, change,
// or remove line items, and a delete-then-insert keeps the rows exactly
// in sync with the aggregate.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Updates with Select keeps the write an update: Save would fall back
	// to an insert when the row is gone instead of reporting it missing.
	result := r.db.WithContext(ctx).Model(&TripDTO{}).Where("id = ?", dto.ID).
		Select("vehicle_id", "driver_id", "scheduled_date", "status", "estimated_duration").
		Updates(&TripDTO{
			VehicleID:         dto.VehicleID,
			DriverID:          dto.DriverID,
			ScheduledDate:     dto.ScheduledDate,
			Status:            dto.Status,
			EstimatedDuration: dto.EstimatedDuration,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("trip", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Where("trip_id = ?", dto.ID).Delete(&CollectionDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Collections) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Collections).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trip by ID, including all of its collections.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).Preload("Collections").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDriver retrieves the driver's most recent scheduled or
// in-progress trip.
func (r *GormTripRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*trip.Trip, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.getActive(ctx, "driver_id = ?", driverID)
}

// GetActiveByVehicle retrieves the vehicle's most recent scheduled or
// in-progress trip.
func (r *GormTripRepository) GetActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (*trip.Trip, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	return r.getActive(ctx, "vehicle_id = ?", vehicleID)
}

// getActive finds the most recently scheduled active trip matching the
// resource condition. Active means scheduled or in_progress.
func (r *GormTripRepository) getActive(ctx context.Context, condition string, resourceID kernel.UUID) (*trip.Trip, error) {
	var dto TripDTO
	err := r.db.WithContext(ctx).
		Preload("Collections").
		Where(condition, resourceID.Bytes()).
		Where("status IN ?", []string{trip.Scheduled.String(), trip.InProgress.String()}).
		Order("scheduled_date DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active trip", resourceID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a trip and its collections from the database.
func (r *GormTripRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("trip_id = ?", id.Bytes()).Delete(&CollectionDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TripDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("trip", id.String())
	}

	return nil
}
