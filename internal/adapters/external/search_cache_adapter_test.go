package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertracker.app/internal/mocks"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

func TestSearchCacheAdapter_RoundTrip(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordCacheMiss(mock.Anything, "search").Once()
	metrics.EXPECT().RecordCacheHit(mock.Anything, "search").Once()

	adapter := NewSearchCacheAdapter(NewMemoryCacheProvider(), metrics)
	ctx := context.Background()

	_, err := adapter.Get(ctx, "search:Paris")
	assert.True(t, errors.IsNotFoundError(err))

	places := []ports.PlaceData{{Name: "Paris", Latitude: 48.85, Longitude: 2.35, Country: "FR", State: "Ile-de-France"}}
	require.NoError(t, adapter.Set(ctx, "search:Paris", places, time.Minute))

	cached, err := adapter.Get(ctx, "search:Paris")
	require.NoError(t, err)
	assert.Equal(t, places, cached)
}

func TestSearchCacheAdapter_EmptyResultIsAHit(t *testing.T) {
	adapter := NewSearchCacheAdapter(NewMemoryCacheProvider(), nil)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "search:Xyz", nil, time.Minute))

	cached, err := adapter.Get(ctx, "search:Xyz")
	require.NoError(t, err)
	assert.NotNil(t, cached)
	assert.Empty(t, cached)
}

func TestSearchCacheAdapter_CorruptEntry(t *testing.T) {
	provider := mocks.NewCacheProvider(t)
	provider.EXPECT().Get(mock.Anything, "search:Bad").Return([]byte("{not json"), nil)

	adapter := NewSearchCacheAdapter(provider, nil)

	cached, err := adapter.Get(context.Background(), "search:Bad")
	assert.Nil(t, cached)
	assert.Equal(t, errors.CacheError, errors.TypeOf(err))
}
