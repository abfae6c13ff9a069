package infrastructure

import (
	"context"

	"golang.org/x/sync/errgroup"
	"weathertracker.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker   ports.HealthChecker
	CacheChecker      ports.HealthChecker
	WeatherAPIChecker ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.CacheChecker != nil {
		checkers["cache"] = config.CacheChecker
	}
	if config.WeatherAPIChecker != nil {
		checkers["weatherAPI"] = config.WeatherAPIChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every component check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	statuses := make([]ports.HealthStatus, len(names))

	var g errgroup.Group
	for i, name := range names {
		checker := s.checkers[name]
		g.Go(func() error {
			statuses[i] = checker.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]ports.HealthStatus, len(names)+1)
	for i, name := range names {
		results[name] = statuses[i]
	}

	if s.configProvider != nil {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"pageSize":  s.configProvider.GetPaginationConfig().PageSize,
				"cacheType": s.configProvider.GetCacheConfig().Type,
				"lang":      s.configProvider.GetWeatherConfig().Lang,
			},
		}
	}

	return results
}

// OverallStatus folds component results into the worst status; degraded components still serve
func OverallStatus(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, status := range results {
		switch status.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}

// IsHealthy reports whether no component is unhealthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	return OverallStatus(results) != StatusUnhealthy
}
