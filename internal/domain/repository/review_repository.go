package repository

import (
	"context"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository stores property reviews.
type ReviewRepository interface {
	// FindByProperty returns a property's reviews, newest first.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error
}
