package usecase

import (
	"context"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines a review left by a user.
type CreateReviewInput struct {
	PropertyID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
}

// ReviewUsecase manages property reviews.
type ReviewUsecase interface {
	// Create stores a review. The user must hold a booking on the property.
	Create(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
}
