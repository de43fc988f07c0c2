package usecase

import (
	"context"

	"rental/internal/domain/entity"
	"rental/internal/domain/geo"

	"github.com/google/uuid"
)

// CreatePropertyInput defines a new listing. When Coordinate is nil and PlaceID
// is set, the place is geocoded.
type CreatePropertyInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	PricePerNight float64
	LocationName  string
	PlaceID       string
	Coordinate    *geo.Coordinate
}

// PropertyUsecase manages the property catalog.
type PropertyUsecase interface {
	Create(ctx context.Context, input *CreatePropertyInput) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Property, error)
}
