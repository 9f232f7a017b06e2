package geocoding

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoderServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestGeocode_ResolvesAndCaches(t *testing.T) {
	var calls int64
	server := newGeocoderServer(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, "1012JS", r.URL.Query().Get("postalCode"))
		assert.Equal(t, "NL", r.URL.Query().Get("country"))
		fmt.Fprint(w, `{"lat":52.37,"lon":4.89}`)
	})
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second, nil, nil)

	first := resolver.Geocode(context.Background(), "1012JS", "NL")
	require.NotNil(t, first)
	assert.InDelta(t, 52.37, first.Lat, 1e-9)
	assert.InDelta(t, 4.89, first.Lon, 1e-9)

	second := resolver.Geocode(context.Background(), "1012JS", "NL")
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestGeocode_EmptyInputs(t *testing.T) {
	resolver := NewResolver("http://unused", time.Second, nil, nil)

	assert.Nil(t, resolver.Geocode(context.Background(), "", "NL"))
	assert.Nil(t, resolver.Geocode(context.Background(), "1012JS", ""))
}

func TestGeocode_TimeoutYieldsNil(t *testing.T) {
	server := newGeocoderServer(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"lat":1,"lon":1}`)
	})
	defer server.Close()

	resolver := NewResolver(server.URL, 20*time.Millisecond, nil, nil)

	assert.Nil(t, resolver.Geocode(context.Background(), "1012JS", "NL"))
}

func TestGeocode_FailureIsNotCached(t *testing.T) {
	var calls int64
	server := newGeocoderServer(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"lat":52.37,"lon":4.89}`)
	})
	defer server.Close()

	resolver := NewResolver(server.URL, time.Second, nil, nil)

	assert.Nil(t, resolver.Geocode(context.Background(), "1012JS", "NL"))

	// the failed lookup left no cache entry, so the retry hits the service
	coord := resolver.Geocode(context.Background(), "1012JS", "NL")
	require.NotNil(t, coord)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestCoordinateCache_KeysAreExactPairs(t *testing.T) {
	cache := NewCoordinateCache()

	cache.Put("1012JS", "NL", domain.Coordinate{Lat: 52.37, Lon: 4.89})
	cache.Put("1012JS", "BE", domain.Coordinate{Lat: 50.85, Lon: 4.35})

	assert.Equal(t, 2, cache.Len())

	coord, ok := cache.Get("1012JS", "NL")
	require.True(t, ok)
	assert.InDelta(t, 52.37, coord.Lat, 1e-9)

	_, ok = cache.Get("1012js", "NL")
	assert.False(t, ok)

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
}

func TestHaversine(t *testing.T) {
	amsterdam := &domain.Coordinate{Lat: 52.37, Lon: 4.89}
	rotterdam := &domain.Coordinate{Lat: 51.92, Lon: 4.47}
	berlin := &domain.Coordinate{Lat: 52.53, Lon: 13.38}

	assert.Zero(t, Haversine(amsterdam, amsterdam))

	nearby := Haversine(amsterdam, rotterdam)
	assert.InDelta(t, 57, nearby, 5)

	far := Haversine(amsterdam, berlin)
	assert.Greater(t, far, nearby)
	assert.InDelta(t, 577, far, 15)

	assert.Equal(t, Haversine(amsterdam, berlin), Haversine(berlin, amsterdam))
}

func TestHaversine_NilCoordinateIsInfinite(t *testing.T) {
	coord := &domain.Coordinate{Lat: 52.37, Lon: 4.89}

	assert.True(t, math.IsInf(Haversine(nil, coord), 1))
	assert.True(t, math.IsInf(Haversine(coord, nil), 1))
	assert.True(t, math.IsInf(Haversine(nil, nil), 1))
}
