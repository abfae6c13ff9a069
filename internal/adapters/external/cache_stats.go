package external

import (
	"sync/atomic"
	"time"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// hitCounter tracks cache hits and misses for the CacheMetrics port
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (c *hitCounter) RecordHit() {
	c.hits.Add(1)
}

func (c *hitCounter) RecordMiss() {
	c.misses.Add(1)
}

// RecordOperation is a no-op; operation timings are exported by the Prometheus collector
func (c *hitCounter) RecordOperation(operation string, duration time.Duration) {}

func (c *hitCounter) GetStats() ports.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func validateEntry(key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
