package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/metrics"
)

const earthRadiusKm = 6371.0

// Resolver resolves (postal code, country) pairs to coordinates through an
// external geocoding service, caching results for the process lifetime.
type Resolver struct {
	BaseURL string
	client  *http.Client
	timeout time.Duration
	cache   *CoordinateCache
	metrics *metrics.AllocationMetrics
}

func NewResolver(baseURL string, timeout time.Duration, cache *CoordinateCache, allocationMetrics *metrics.AllocationMetrics) *Resolver {
	if cache == nil {
		cache = NewCoordinateCache()
	}
	return &Resolver{
		BaseURL: baseURL,
		client:  &http.Client{},
		timeout: timeout,
		cache:   cache,
		metrics: allocationMetrics,
	}
}

// Geocode returns nil when the pair cannot be resolved in time. Failures are
// not cached, so a later call may still succeed.
func (r *Resolver) Geocode(ctx context.Context, postalCode, country string) *domain.Coordinate {
	if postalCode == "" || country == "" {
		return nil
	}

	if coord, ok := r.cache.Get(postalCode, country); ok {
		if r.metrics != nil {
			r.metrics.GeocodeCacheHitsTotal.Inc()
		}
		return coord
	}
	if r.metrics != nil {
		r.metrics.GeocodeCacheMissesTotal.Inc()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	requestURL := fmt.Sprintf("%s/geocode?postalCode=%s&country=%s",
		r.BaseURL, url.QueryEscape(postalCode), url.QueryEscape(country))
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil
	}

	response, err := r.client.Do(request)
	if err != nil {
		r.fail(postalCode, country, err)
		return nil
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		r.fail(postalCode, country, err)
		return nil
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		r.fail(postalCode, country, fmt.Errorf("geocoder returned status %d", response.StatusCode))
		return nil
	}

	var payload struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.Unmarshal(responseBodyBytes, &payload); err != nil {
		r.fail(postalCode, country, err)
		return nil
	}

	coord := domain.Coordinate{Lat: payload.Lat, Lon: payload.Lon}
	r.cache.Put(postalCode, country, coord)
	return &coord
}

func (r *Resolver) fail(postalCode, country string, err error) {
	if r.metrics != nil {
		r.metrics.GeocodeFailuresTotal.Inc()
	}
	slog.Warn("geocoding failed",
		"postal_code", postalCode,
		"country", country,
		"error", err.Error())
}

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula. A nil coordinate yields +Inf so
// callers rank unresolvable locations last.
func (r *Resolver) Distance(a, b *domain.Coordinate) float64 {
	return Haversine(a, b)
}

func Haversine(a, b *domain.Coordinate) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}

	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
