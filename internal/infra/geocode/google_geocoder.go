// Package geocode resolves place identifiers to coordinates through the Google
// Place Details API, fronted by a two-level cache.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/service"

	"github.com/pkg/errors"
)

// DefaultGoogleBaseURL is the Place Details JSON endpoint.
const DefaultGoogleBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Geometry struct {
			Location struct {
				Lat *float64 `json:"lat"`
				Lng *float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

type googleGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGoogleGeocoder creates a Place Details client. An empty baseURL uses the public endpoint.
func NewGoogleGeocoder(apiKey, baseURL string, timeout time.Duration) service.Geocoder {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}

	return &googleGeocoder{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Resolve looks up placeID. Every failure is reported as *GeocodeUnavailableError.
func (g *googleGeocoder) Resolve(ctx context.Context, placeID string) (*geo.Coordinate, error) {
	if placeID == "" {
		return nil, &domainerrors.GeocodeUnavailableError{Cause: errors.New("empty place id")}
	}

	coord, err := g.fetch(ctx, placeID)
	if err != nil {
		return nil, &domainerrors.GeocodeUnavailableError{PlaceID: placeID, Cause: err}
	}

	return coord, nil
}

func (g *googleGeocoder) fetch(ctx context.Context, placeID string) (*geo.Coordinate, error) {
	query := url.Values{}
	query.Set("placeid", placeID)
	query.Set("fields", "geometry")
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build place details request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "place details request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("place details returned HTTP %d", resp.StatusCode)
	}

	var body placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode place details")
	}

	if body.Status != "" && body.Status != "OK" {
		return nil, errors.Errorf("place details status %s: %s", body.Status, body.ErrorMessage)
	}

	loc := body.Result.Geometry.Location
	if loc.Lat == nil || loc.Lng == nil {
		return nil, errors.New("place has no geometry")
	}

	coord := &geo.Coordinate{Lat: *loc.Lat, Lng: *loc.Lng}
	if err := coord.Validate(); err != nil {
		return nil, errors.Wrap(err, "place details returned an invalid coordinate")
	}

	return coord, nil
}

// disabledGeocoder is used when geocoding.provider is "none".
type disabledGeocoder struct{}

// NewDisabledGeocoder returns a geocoder that never resolves anything.
func NewDisabledGeocoder() service.Geocoder {
	return disabledGeocoder{}
}

func (disabledGeocoder) Resolve(_ context.Context, placeID string) (*geo.Coordinate, error) {
	return nil, &domainerrors.GeocodeUnavailableError{PlaceID: placeID, Cause: errors.New("geocoding is disabled")}
}
