package infrastructure

import (
	"time"

	"weathertracker.app/internal/config"
	"weathertracker.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns OpenWeather access settings
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	w := c.config.Weather
	return ports.WeatherConfig{
		RequestTimeout:   time.Duration(w.RequestTimeoutSeconds) * time.Second,
		FetchConcurrency: w.FetchConcurrency,
		GeocodingLimit:   w.GeocodingLimit,
		Lang:             w.Lang,
		Units:            w.Units,
		EnableLogging:    w.EnableLogging,
	}
}

func (c *ConfigProviderAdapter) GetPaginationConfig() ports.PaginationConfig {
	return ports.PaginationConfig{PageSize: c.config.Pagination.PageSize}
}

func (c *ConfigProviderAdapter) GetSearchConfig() ports.SearchConfig {
	return ports.SearchConfig{
		EnableCache: c.config.Search.EnableCache,
		CacheTTL:    time.Duration(c.config.Search.CacheTTLSeconds) * time.Second,
	}
}

func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		TokenTTL:     time.Duration(c.config.Auth.TokenTTLMinutes) * time.Minute,
		CookieSecure: c.config.Auth.CookieSecure,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:    c.config.Server.Port,
		GinMode: c.config.Server.GinMode,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Host:     c.config.Database.Host,
		Port:     c.config.Database.Port,
		User:     c.config.Database.User,
		Password: c.config.Database.Password,
		Name:     c.config.Database.Name,
		SSLMode:  c.config.Database.SSLMode,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
		Memcached: ports.MemcachedConfig{
			Addrs:   c.config.Cache.Memcached.Addrs,
			Timeout: time.Duration(c.config.Cache.Memcached.TimeoutMs) * time.Millisecond,
		},
	}
}
