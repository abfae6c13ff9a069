package external

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// memcached treats expirations above 30 days as absolute unix timestamps
const maxMemcachedRelativeTTL = 30 * 24 * time.Hour

// MemcachedCacheProvider implements CacheProvider on top of memcached servers
type MemcachedCacheProvider struct {
	hitCounter

	client *memcache.Client
}

// NewMemcachedCacheProvider creates a memcached-backed provider
func NewMemcachedCacheProvider(cfg *ports.MemcachedConfig) (*MemcachedCacheProvider, error) {
	if cfg == nil || len(cfg.Addrs) == 0 {
		return nil, errors.NewConfigurationError("memcached addresses are required", nil)
	}

	client := memcache.New(cfg.Addrs...)
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return &MemcachedCacheProvider{client: client}, nil
}

// memcachedKey maps arbitrary keys (spaces, cyrillic) onto the memcached key charset
func memcachedKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "wt:" + hex.EncodeToString(sum[:])
}

func memcachedExpiration(ttl time.Duration) int32 {
	if ttl > maxMemcachedRelativeTTL {
		ttl = maxMemcachedRelativeTTL
	}
	seconds := int32(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

func (m *MemcachedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	item, err := m.client.Get(memcachedKey(key))
	if stderrors.Is(err, memcache.ErrCacheMiss) {
		m.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if err != nil {
		return nil, errors.NewCacheError("memcached get failed", err)
	}

	m.RecordHit()
	return item.Value, nil
}

func (m *MemcachedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateEntry(key, value, ttl); err != nil {
		return err
	}

	err := m.client.Set(&memcache.Item{
		Key:        memcachedKey(key),
		Value:      value,
		Expiration: memcachedExpiration(ttl),
	})
	if err != nil {
		return errors.NewCacheError("memcached set failed", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	err := m.client.Delete(memcachedKey(key))
	if err != nil && !stderrors.Is(err, memcache.ErrCacheMiss) {
		return errors.NewCacheError("memcached delete failed", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	_, err := m.client.Get(memcachedKey(key))
	if stderrors.Is(err, memcache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, errors.NewCacheError("memcached exists failed", err)
	}
	return true, nil
}

func (m *MemcachedCacheProvider) Clear(ctx context.Context) error {
	if err := m.client.DeleteAll(); err != nil {
		return errors.NewCacheError("memcached clear failed", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Ping(ctx context.Context) error {
	if err := m.client.Ping(); err != nil {
		return errors.NewCacheError("memcached ping failed", err)
	}
	return nil
}

func (m *MemcachedCacheProvider) Close() error {
	return m.client.Close()
}
