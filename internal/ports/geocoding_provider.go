package ports

import (
	"context"
	"time"
)

// PlaceData is a raw geocoding record. LocalNames is nil when the provider omitted it.
type PlaceData struct {
	Name       string            `json:"name"`
	Latitude   float64           `json:"lat"`
	Longitude  float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
	LocalNames map[string]string `json:"local_names,omitempty"`
}

// GeocodingProvider defines the contract for name-to-coordinates lookups
type GeocodingProvider interface {
	FindPlaces(ctx context.Context, query string, limit int) ([]PlaceData, error)
}

// SearchCache defines the contract for caching filtered search results
type SearchCache interface {
	Get(ctx context.Context, key string) ([]PlaceData, error)
	Set(ctx context.Context, key string, places []PlaceData, ttl time.Duration) error
}
