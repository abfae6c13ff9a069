package infrastructure

import (
	"context"

	"weathertracker.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// CacheBackend is what the cache checker needs from a cache provider
type CacheBackend interface {
	Ping(ctx context.Context) error
	GetStats() ports.CacheStats
}

// CacheHealthChecker pings the configured cache and reports its hit statistics
type CacheHealthChecker struct {
	cacheType string
	backend   CacheBackend
}

func NewCacheHealthChecker(cacheType string, backend CacheBackend) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, backend: backend}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    StatusHealthy,
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.backend == nil {
		status.Status = StatusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if err := c.backend.Ping(ctx); err != nil {
		// cache outages degrade the service, they never fail it
		status.Status = StatusDegraded
		status.Error = err.Error()
		return status
	}

	stats := c.backend.GetStats()
	status.Details["hits"] = stats.Hits
	status.Details["misses"] = stats.Misses
	status.Details["hit_ratio"] = stats.HitRatio
	return status
}

// BreakerStateReporter exposes a named circuit breaker state
type BreakerStateReporter interface {
	Name() string
	State() string
}

// WeatherAPIHealthChecker reports the circuit breaker state of every OpenWeather client
type WeatherAPIHealthChecker struct {
	clients []BreakerStateReporter
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(clients ...BreakerStateReporter) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{clients: clients}
}

// Check never calls OpenWeather; an open breaker already means recent calls failed
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    StatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if len(w.clients) == 0 {
		status.Status = StatusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	for _, client := range w.clients {
		state := client.State()
		status.Details[client.Name()] = state
		if state != "closed" {
			status.Status = StatusDegraded
		}
	}
	return status
}
