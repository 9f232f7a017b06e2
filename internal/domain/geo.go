package domain

import "context"

type Coordinate struct {
	Lat float64
	Lon float64
}

type Geocoder interface {
	// Geocode returns nil when the location cannot be resolved; callers
	// treat a nil coordinate as maximal distance, never as a failure.
	Geocode(ctx context.Context, postalCode, country string) *Coordinate

	// Distance returns great-circle kilometers between two coordinates.
	Distance(a, b *Coordinate) float64
}
