package service

import (
	"context"

	"rental/internal/domain/geo"
)

// Geocoder resolves an external place identifier to coordinates.
// Implementations report every failure as *errors.GeocodeUnavailableError.
type Geocoder interface {
	Resolve(ctx context.Context, placeID string) (*geo.Coordinate, error)
}
