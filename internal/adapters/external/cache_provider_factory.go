package external

import (
	"context"
	"fmt"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// CacheBackend is a CacheProvider that also reports statistics and liveness
type CacheBackend interface {
	ports.CacheProvider
	ports.CacheMetrics
	Ping(ctx context.Context) error
	Close() error
}

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *ports.CacheConfig) (CacheBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case "memory":
		return NewMemoryCacheProvider(), nil
	case "redis":
		return NewRedisCacheProvider(&cfg.Redis)
	case "memcached":
		return NewMemcachedCacheProvider(&cfg.Memcached)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type), nil)
	}
}
