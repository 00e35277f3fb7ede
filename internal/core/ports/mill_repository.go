package ports

import (
	"context"

	"fleettrip/internal/core/domain/model/kernel"
	"fleettrip/internal/core/domain/model/mill"
)

// MillRepository defines the persistence contract for mill aggregates.
type MillRepository interface {
	// Add persists a new mill aggregate to storage.
	Add(ctx context.Context, aggregate *mill.Mill) error

	// Update persists changes to an existing mill aggregate.
	Update(ctx context.Context, aggregate *mill.Mill) error

	// Get retrieves a mill aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*mill.Mill, error)

	// Delete removes a mill from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
