package repository

import (
	"context"
	"errors"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrPropertyNotFound is returned when a property ID does not resolve.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository is the property catalog.
// List methods return properties ordered by creation time, then ID.
type PropertyRepository interface {
	// FindAll returns the full catalog.
	FindAll(ctx context.Context) ([]*entity.Property, error)

	// FindWithinBound returns properties with a coordinate inside bound.
	// Properties without a coordinate are never returned.
	FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Property, error)

	// FindByID retrieves a single property.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByIDs retrieves the properties that exist among ids. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error)

	// FindByOwner returns every listing owned by ownerID.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)

	// Create persists a new listing.
	Create(ctx context.Context, property *entity.Property) error

	// LockForUpdate reads the property row on the primary and holds a row lock
	// until the surrounding transaction ends. It must run inside TransactionManager.Execute.
	LockForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error)
}
