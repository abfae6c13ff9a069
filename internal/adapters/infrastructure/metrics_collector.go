package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a private registry
type PrometheusMetricsCollector struct {
	registry         *prometheus.Registry
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
}

// NewPrometheusMetricsCollector registers the tracker's collectors plus the Go runtime collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertracker_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertracker_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache"},
		),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weathertracker_upstream_requests_total",
				Help: "OpenWeather requests by API and outcome",
			},
			[]string{"api", "outcome"},
		),
		upstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weathertracker_upstream_request_duration_seconds",
				Help:    "OpenWeather request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),
	}

	registry.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.upstreamRequests,
		m.upstreamLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context, cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context, cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *PrometheusMetricsCollector) RecordUpstreamCall(ctx context.Context, api string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.upstreamRequests.WithLabelValues(api, outcome).Inc()
	m.upstreamLatency.WithLabelValues(api).Observe(duration.Seconds())
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
