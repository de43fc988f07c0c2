package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "rental/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaceServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ChIJ-nyc", r.URL.Query().Get("placeid"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "geometry", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestGoogleGeocoder_Resolve(t *testing.T) {
	srv := newPlaceServer(t, http.StatusOK, `{"status":"OK","result":{"geometry":{"location":{"lat":40.7128,"lng":-74.006}}}}`)
	g := NewGoogleGeocoder("test-key", srv.URL, time.Second)

	coord, err := g.Resolve(context.Background(), "ChIJ-nyc")
	require.NoError(t, err)
	assert.InDelta(t, 40.7128, coord.Lat, 1e-9)
	assert.InDelta(t, -74.006, coord.Lng, 1e-9)
}

func TestGoogleGeocoder_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api status", http.StatusOK, `{"status":"NOT_FOUND","error_message":"no such place"}`},
		{"missing geometry", http.StatusOK, `{"status":"OK","result":{}}`},
		{"http error", http.StatusInternalServerError, `oops`},
		{"malformed json", http.StatusOK, `{"status":`},
		{"out of range", http.StatusOK, `{"status":"OK","result":{"geometry":{"location":{"lat":123,"lng":0}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newPlaceServer(t, tt.status, tt.body)
			g := NewGoogleGeocoder("test-key", srv.URL, time.Second)

			coord, err := g.Resolve(context.Background(), "ChIJ-nyc")
			assert.Nil(t, coord)

			var geoErr *domainerrors.GeocodeUnavailableError
			require.ErrorAs(t, err, &geoErr)
			assert.Equal(t, "ChIJ-nyc", geoErr.PlaceID)
		})
	}
}

func TestGoogleGeocoder_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	g := NewGoogleGeocoder("test-key", srv.URL, 100*time.Millisecond)
	_, err := g.Resolve(context.Background(), "ChIJ-nyc")

	var geoErr *domainerrors.GeocodeUnavailableError
	assert.ErrorAs(t, err, &geoErr)
}

func TestDisabledGeocoder(t *testing.T) {
	_, err := NewDisabledGeocoder().Resolve(context.Background(), "anything")

	var geoErr *domainerrors.GeocodeUnavailableError
	require.ErrorAs(t, err, &geoErr)
	assert.Equal(t, "anything", geoErr.PlaceID)
}
