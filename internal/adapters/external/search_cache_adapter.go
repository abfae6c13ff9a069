package external

import (
	"context"
	"encoding/json"
	"time"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

const searchCacheName = "search"

// SearchCacheAdapter stores filtered geocoding results as JSON in a generic CacheProvider
type SearchCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.MetricsCollector
}

// NewSearchCacheAdapter creates a search cache; metrics may be nil
func NewSearchCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.MetricsCollector) *SearchCacheAdapter {
	return &SearchCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
	}
}

func (s *SearchCacheAdapter) Get(ctx context.Context, key string) ([]ports.PlaceData, error) {
	data, err := s.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) && s.metrics != nil {
			s.metrics.RecordCacheMiss(ctx, searchCacheName)
		}
		return nil, err
	}

	var places []ports.PlaceData
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, errors.NewCacheError("failed to deserialize search results", err)
	}
	if places == nil {
		places = []ports.PlaceData{}
	}

	if s.metrics != nil {
		s.metrics.RecordCacheHit(ctx, searchCacheName)
	}
	return places, nil
}

func (s *SearchCacheAdapter) Set(ctx context.Context, key string, places []ports.PlaceData, ttl time.Duration) error {
	if places == nil {
		places = []ports.PlaceData{}
	}

	data, err := json.Marshal(places)
	if err != nil {
		return errors.NewCacheError("failed to serialize search results", err)
	}

	return s.cacheProvider.Set(ctx, key, data, ttl)
}
