package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

func TestMemcachedKey(t *testing.T) {
	key := memcachedKey("search:Нижний Новгород")

	assert.Len(t, key, len("wt:")+64)
	assert.NotContains(t, key, " ")
	assert.Equal(t, key, memcachedKey("search:Нижний Новгород"))
	assert.NotEqual(t, key, memcachedKey("search:Москва"))
}

func TestMemcachedExpiration(t *testing.T) {
	assert.Equal(t, int32(180), memcachedExpiration(180*time.Second))
	assert.Equal(t, int32(1), memcachedExpiration(10*time.Millisecond))
	assert.Equal(t, int32(30*24*60*60), memcachedExpiration(365*24*time.Hour))
}

func TestNewMemcachedCacheProvider(t *testing.T) {
	_, err := NewMemcachedCacheProvider(nil)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewMemcachedCacheProvider(&ports.MemcachedConfig{})
	assert.True(t, errors.IsConfigurationError(err))

	provider, err := NewMemcachedCacheProvider(&ports.MemcachedConfig{
		Addrs:   []string{"127.0.0.1:1"},
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, provider.client.Timeout)

	// nothing listens on port 1
	_, err = provider.Get(context.Background(), "k")
	assert.Equal(t, errors.CacheError, errors.TypeOf(err))
	assert.Error(t, provider.Ping(context.Background()))
	assert.True(t, errors.IsValidationError(provider.Set(context.Background(), "", []byte("v"), time.Minute)))
}
