// Package geo provides the great-circle math used to match properties against a search point.
package geo

import (
	"math"

	domainerrors "rental/internal/domain/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusMiles is the mean Earth radius used by Distance.
	EarthRadiusMiles = 3958.8

	// boundPadding widens search boxes so rounding never drops a property on the circle's edge.
	boundPadding = 1.05
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinate lies on the globe.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}

// Point converts to an orb point, which is ordered longitude first.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// DistanceTo returns the great-circle distance to other in miles.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return Distance(c.Lat, c.Lng, other.Lat, other.Lng)
}

// Distance returns the haversine great-circle distance in miles between two points given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// SearchBound returns a lat/lng box containing every point within radiusMiles of center.
// ok is false when the box would wrap across the antimeridian; callers must then
// fall back to an unbounded scan. Near a pole the box spans every longitude.
func SearchBound(center Coordinate, radiusMiles float64) (bound orb.Bound, ok bool) {
	if radiusMiles <= 0 {
		return orb.Bound{Min: center.Point(), Max: center.Point()}, true
	}

	// orb measures with its own equatorial radius, so scale the distance to keep the same angle.
	meters := radiusMiles / EarthRadiusMiles * orb.EarthRadius * boundPadding
	bound = orbgeo.NewBoundAroundPoint(center.Point(), meters)

	for _, v := range []float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]} {
		if math.IsNaN(v) {
			return orb.Bound{}, false
		}
	}

	if bound.Min[0] > bound.Max[0] {
		return orb.Bound{}, false
	}

	return bound, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
