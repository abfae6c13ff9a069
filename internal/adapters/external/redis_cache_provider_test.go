package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *ports.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return mockRedis, &ports.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func TestNewRedisCacheProvider(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		provider, err := NewRedisCacheProvider(nil)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		provider, err := NewRedisCacheProvider(&ports.RedisConfig{
			Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
		})
		assert.Nil(t, provider)
		assert.Equal(t, errors.CacheError, errors.TypeOf(err))
	})

	t.Run("Valid", func(t *testing.T) {
		_, cfg := setupMockRedis(t)
		provider, err := NewRedisCacheProvider(cfg)
		require.NoError(t, err)
		assert.NoError(t, provider.Ping(context.Background()))
		assert.NoError(t, provider.Close())
	})
}

func TestRedisCacheProvider_Operations(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProvider(cfg)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "search:Москва", []byte(`[]`), time.Minute))

		value, err := provider.Get(ctx, "search:Москва")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), value)
		assert.True(t, mockRedis.Exists(redisKeyPrefix+"search:Москва"))
	})

	t.Run("Miss", func(t *testing.T) {
		value, err := provider.Get(ctx, "missing")
		assert.Nil(t, value)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "delete-me", []byte("v"), time.Minute))

		exists, err := provider.Exists(ctx, "delete-me")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "delete-me"))

		exists, err = provider.Exists(ctx, "delete-me")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "ttl", []byte("v"), 100*time.Millisecond))
		mockRedis.FastForward(150 * time.Millisecond)

		_, err := provider.Get(ctx, "ttl")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, mockRedis.Set("foreign", "x"))
		require.NoError(t, provider.Set(ctx, "own", []byte("v"), time.Minute))

		require.NoError(t, provider.Clear(ctx))

		assert.True(t, mockRedis.Exists("foreign"))
		assert.False(t, mockRedis.Exists(redisKeyPrefix+"own"))
	})
}

func TestRedisCacheProvider_Stats(t *testing.T) {
	_, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProvider(cfg)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	ctx := context.Background()
	require.NoError(t, provider.Set(ctx, "k", []byte("v"), time.Minute))

	_, _ = provider.Get(ctx, "k")
	_, _ = provider.Get(ctx, "absent")
	_, _ = provider.Get(ctx, "k")

	stats := provider.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
}

func TestRedisCacheProvider_CanceledContext(t *testing.T) {
	_, cfg := setupMockRedis(t)
	provider, err := NewRedisCacheProvider(cfg)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = provider.Get(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, provider.Set(ctx, "key", []byte("v"), time.Minute))
	assert.Error(t, provider.Delete(ctx, "key"))
}
