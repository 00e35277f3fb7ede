package millrepo

import (
	"context"
	"errors"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/mill"
	"fleettrip/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMillRepository implements MillRepository using GORM.
type GormMillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMillRepository creates a new GORM mill repository.
func NewGormMillRepository(db *gorm.DB, tracker aggregateTracker) *GormMillRepository {
	return &GormMillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new mill to the database.
func (r *GormMillRepository) Add(ctx context.Context, aggregate *mill.Mill) error {
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

// Update saves an existing mill to the database.
func (r *GormMillRepository) Update(ctx context.Context, aggregate *mill.Mill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MillDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mill", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a mill from the database.
func (r *GormMillRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MillDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("mill", id.String())
	}

	return nil
}

// Get retrieves a mill by ID.
func (r *GormMillRepository) Get(ctx context.Context, id kernel.UUID) (*mill.Mill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
