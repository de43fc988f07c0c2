package geocode

import (
	"context"
	"log/slog"

	"rental/config"
	"rental/internal/domain/geo"
	"rental/internal/domain/service"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for creating a geocoder
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates the geocoder selected by geocoding.provider
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding

	switch cfg.Provider {
	case "", config.GeocodingProviderNone:
		params.Logger.Info("Geocoding disabled, searches by place will not filter by radius")

		return NewDisabledGeocoder(), nil

	case config.GeocodingProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("geocoding.apiKey is required for the google provider")
		}

		upstream := NewGoogleGeocoder(cfg.APIKey, cfg.BaseURL, cfg.Timeout)
		local := ccache.New(ccache.Configure[geo.Coordinate]().MaxSize(cfg.CacheSize))

		var shared memcacheClient
		if len(cfg.MemcachedServers) > 0 {
			client := memcache.New(cfg.MemcachedServers...)
			client.Timeout = cfg.Timeout
			shared = client
			params.Logger.Info("Geocode cache backed by memcached", slog.Any("servers", cfg.MemcachedServers))
		}

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				local.Stop()

				return nil
			},
		})

		return NewCachedGeocoder(upstream, local, shared, cfg.CacheTTL, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}
}
