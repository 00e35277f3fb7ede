package vehiclerepo

import (
	"context"
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/vehicle"
	"fleettrip/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
// A duplicate plate number surfaces as a ResourceConflictError.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewResourceConflictError("Vehicle plate number already registered")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select("*") writes every column, so clearing the nullable driver
	// assignment round-trips correctly. Save is unsuitable here: it falls
	// back to an insert when the row is gone.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a vehicle from the database.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. The gorm postgres driver is pgx-based, so constraint errors
// surface as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
