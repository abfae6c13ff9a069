package ports

import (
	"context"
	"time"
)

// WeatherConfig represents OpenWeather access configuration
type WeatherConfig struct {
	RequestTimeout   time.Duration
	FetchConcurrency int
	GeocodingLimit   int
	Lang             string
	Units            string
	EnableLogging    bool
}

// PaginationConfig represents dashboard pagination configuration
type PaginationConfig struct {
	PageSize int
}

// SearchConfig represents location search caching configuration
type SearchConfig struct {
	EnableCache bool
	CacheTTL    time.Duration
}

// AuthConfig represents session configuration
type AuthConfig struct {
	TokenTTL     time.Duration
	CookieSecure bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int
	GinMode string
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	Redis     RedisConfig
	Memcached MemcachedConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// MemcachedConfig represents memcached configuration
type MemcachedConfig struct {
	Addrs   []string
	Timeout time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetPaginationConfig() PaginationConfig
	GetSearchConfig() SearchConfig
	GetAuthConfig() AuthConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordUpstreamCall(ctx context.Context, api string, success bool, duration time.Duration)
}
