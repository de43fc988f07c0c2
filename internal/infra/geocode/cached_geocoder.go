package geocode

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"rental/internal/domain/geo"
	"rental/internal/domain/service"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

const memcacheKeyPrefix = "rental:geocode:"

// memcacheClient is the subset of *memcache.Client used as the shared cache level.
type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
}

// cachedGeocoder checks an in-process LRU first, then memcached, then the upstream geocoder.
// Only successful lookups are cached.
type cachedGeocoder struct {
	next   service.Geocoder
	local  *ccache.Cache[geo.Coordinate]
	shared memcacheClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps next with the cache levels. shared may be nil.
func NewCachedGeocoder(next service.Geocoder, local *ccache.Cache[geo.Coordinate], shared memcacheClient, ttl time.Duration, logger *slog.Logger) service.Geocoder {
	return &cachedGeocoder{
		next:   next,
		local:  local,
		shared: shared,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve returns a cached coordinate when available.
func (c *cachedGeocoder) Resolve(ctx context.Context, placeID string) (*geo.Coordinate, error) {
	if item := c.local.Get(placeID); item != nil && !item.Expired() {
		coord := item.Value()

		return &coord, nil
	}

	if coord, ok := c.getShared(placeID); ok {
		c.local.Set(placeID, coord, c.ttl)

		return &coord, nil
	}

	coord, err := c.next.Resolve(ctx, placeID)
	if err != nil {
		return nil, err
	}

	c.local.Set(placeID, *coord, c.ttl)
	c.setShared(placeID, *coord)

	return coord, nil
}

func (c *cachedGeocoder) getShared(placeID string) (geo.Coordinate, bool) {
	if c.shared == nil {
		return geo.Coordinate{}, false
	}

	item, err := c.shared.Get(memcacheKey(placeID))
	if err != nil {
		if err != memcache.ErrCacheMiss {
			c.logger.Warn("Memcached geocode lookup failed", slog.String("place_id", placeID), slog.Any("error", err))
		}

		return geo.Coordinate{}, false
	}

	var coord geo.Coordinate
	if err := json.Unmarshal(item.Value, &coord); err != nil {
		c.logger.Warn("Discarding malformed memcached geocode entry", slog.String("place_id", placeID), slog.Any("error", err))

		return geo.Coordinate{}, false
	}

	return coord, true
}

func (c *cachedGeocoder) setShared(placeID string, coord geo.Coordinate) {
	if c.shared == nil {
		return
	}

	value, err := json.Marshal(coord)
	if err != nil {
		return
	}

	item := &memcache.Item{
		Key:        memcacheKey(placeID),
		Value:      value,
		Expiration: int32(c.ttl / time.Second),
	}
	if err := c.shared.Set(item); err != nil {
		c.logger.Warn("Memcached geocode store failed", slog.String("place_id", placeID), slog.Any("error", err))
	}
}

// memcacheKey hashes the place id since memcached keys are limited to 250 printable bytes.
func memcacheKey(placeID string) string {
	sum := sha1.Sum([]byte(placeID))

	return memcacheKeyPrefix + hex.EncodeToString(sum[:])
}
