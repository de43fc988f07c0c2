package usecase

import (
	"context"
	"time"

	"rental/internal/domain/entity"
	"rental/internal/domain/geo"
)

// SearchInput describes an availability query.
type SearchInput struct {
	StartDate time.Time
	EndDate   time.Time

	// Point enables radius filtering. Nil disables it.
	Point *geo.Coordinate

	// RadiusMiles overrides the configured match radius when positive.
	RadiusMiles float64
}

// AvailableProperty is a search hit.
type AvailableProperty struct {
	Property    *entity.Property
	IsAvailable bool

	// DistanceMiles is set only when the search had a point.
	DistanceMiles *float64
}

// AvailabilityUsecase answers which properties are free for a date range near a point.
type AvailabilityUsecase interface {
	Search(ctx context.Context, input *SearchInput) ([]*AvailableProperty, error)
}
