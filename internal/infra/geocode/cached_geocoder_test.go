package geocode

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	calls int
	coord *geo.Coordinate
	err   error
}

func (g *countingGeocoder) Resolve(_ context.Context, _ string) (*geo.Coordinate, error) {
	g.calls++

	return g.coord, g.err
}

type fakeMemcache struct {
	mu    sync.Mutex
	items map[string]*memcache.Item
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: make(map[string]*memcache.Item)}
}

func (m *fakeMemcache) Get(key string) (*memcache.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}

	return item, nil
}

func (m *fakeMemcache) Set(item *memcache.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[item.Key] = item

	return nil
}

func newLocalCache(t *testing.T) *ccache.Cache[geo.Coordinate] {
	cache := ccache.New(ccache.Configure[geo.Coordinate]().MaxSize(100))
	t.Cleanup(cache.Stop)

	return cache
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedGeocoder_LocalHit(t *testing.T) {
	upstream := &countingGeocoder{coord: &geo.Coordinate{Lat: 1, Lng: 2}}
	g := NewCachedGeocoder(upstream, newLocalCache(t), nil, time.Minute, discardLogger())

	for range 3 {
		coord, err := g.Resolve(context.Background(), "place")
		require.NoError(t, err)
		assert.Equal(t, geo.Coordinate{Lat: 1, Lng: 2}, *coord)
	}

	assert.Equal(t, 1, upstream.calls)
}

func TestCachedGeocoder_SharedLevel(t *testing.T) {
	shared := newFakeMemcache()
	upstream := &countingGeocoder{coord: &geo.Coordinate{Lat: 3, Lng: 4}}

	first := NewCachedGeocoder(upstream, newLocalCache(t), shared, time.Minute, discardLogger())
	_, err := first.Resolve(context.Background(), "place")
	require.NoError(t, err)

	item, err := shared.Get(memcacheKey("place"))
	require.NoError(t, err)
	assert.Equal(t, int32(60), item.Expiration)

	// A second instance with a cold local cache is served from memcached.
	second := NewCachedGeocoder(upstream, newLocalCache(t), shared, time.Minute, discardLogger())
	coord, err := second.Resolve(context.Background(), "place")
	require.NoError(t, err)
	assert.Equal(t, geo.Coordinate{Lat: 3, Lng: 4}, *coord)
	assert.Equal(t, 1, upstream.calls)
}

func TestCachedGeocoder_FailuresAreNotCached(t *testing.T) {
	upstream := &countingGeocoder{err: &domainerrors.GeocodeUnavailableError{PlaceID: "place"}}
	g := NewCachedGeocoder(upstream, newLocalCache(t), newFakeMemcache(), time.Minute, discardLogger())

	for range 2 {
		_, err := g.Resolve(context.Background(), "place")
		var geoErr *domainerrors.GeocodeUnavailableError
		assert.ErrorAs(t, err, &geoErr)
	}

	assert.Equal(t, 2, upstream.calls)
}

func TestMemcacheKey(t *testing.T) {
	key := memcacheKey("a place id with spaces and a very long tail")

	assert.True(t, len(key) < 250)
	assert.NotContains(t, key, " ")
	assert.Equal(t, key, memcacheKey("a place id with spaces and a very long tail"))
}
