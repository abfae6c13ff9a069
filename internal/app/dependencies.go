package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weathertracker.app/internal/adapters/database"
	"weathertracker.app/internal/adapters/external"
	"weathertracker.app/internal/adapters/infrastructure"
	"weathertracker.app/internal/adapters/security"
	"weathertracker.app/internal/config"
	"weathertracker.app/internal/ports"
)

const (
	weatherClientName   = "openweather-data"
	geocodingClientName = "openweather-geo"
)

// DependencyContainer builds and owns the adapters behind every port
type DependencyContainer struct {
	config  *config.Config
	db      *gorm.DB
	cache   external.CacheBackend
	metrics *infrastructure.PrometheusMetricsCollector
	clients []*external.OpenWeatherClient
	ports   *ports.ApplicationPorts
}

// OpenDatabase connects to PostgreSQL and brings the schema up to date
func OpenDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	slog.Info("Initializing database connection...")

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), database.Config())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Database connection established successfully")
	return db, nil
}

// NewDependencyContainer wires the adapters around an already opened database
func NewDependencyContainer(cfg *config.Config, db *gorm.DB, logger ports.Logger) (*DependencyContainer, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if logger == nil {
		logger = infrastructure.NewSlogLoggerAdapter(nil)
	}

	container := &DependencyContainer{
		config: cfg,
		db:     db,
	}

	if err := container.runMigrations(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := container.initializePorts(logger); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) runMigrations() error {
	slog.Info("Running database migrations...")

	if err := database.Migrate(c.db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(logger ports.Logger) error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	c.metrics = infrastructure.NewPrometheusMetricsCollector()

	cacheConfig := configProvider.GetCacheConfig()
	cache, err := external.NewCacheProviderFactory().CreateCacheProvider(&cacheConfig)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cache
	slog.Info("Cache provider initialized", "type", cacheConfig.Type)

	weatherCfg := c.config.Weather
	breakerTimeout := time.Duration(weatherCfg.BreakerOpenSeconds) * time.Second
	requestTimeout := time.Duration(weatherCfg.RequestTimeoutSeconds) * time.Second

	dataClient := external.NewOpenWeatherClient(external.OpenWeatherClientParams{
		Name:            weatherClientName,
		BaseURL:         weatherCfg.DataURL,
		APIKey:          weatherCfg.APIKey,
		Timeout:         requestTimeout,
		BreakerFailures: uint32(weatherCfg.BreakerFailures),
		BreakerTimeout:  breakerTimeout,
		Metrics:         c.metrics,
	})
	geoClient := external.NewOpenWeatherClient(external.OpenWeatherClientParams{
		Name:            geocodingClientName,
		BaseURL:         weatherCfg.GeoURL,
		APIKey:          weatherCfg.APIKey,
		Timeout:         requestTimeout,
		BreakerFailures: uint32(weatherCfg.BreakerFailures),
		BreakerTimeout:  breakerTimeout,
		Metrics:         c.metrics,
	})
	c.clients = []*external.OpenWeatherClient{dataClient, geoClient}

	var weatherProvider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		Client: dataClient,
		Lang:   weatherCfg.Lang,
		Units:  weatherCfg.Units,
	})
	var geocodingProvider ports.GeocodingProvider = external.NewOpenWeatherGeocodingAdapter(geoClient, weatherCfg.Lang)

	if weatherCfg.EnableLogging {
		weatherProvider = external.NewWeatherProviderLoggingDecorator(weatherProvider, logger)
		geocodingProvider = external.NewGeocodingProviderLoggingDecorator(geocodingProvider, logger)
		slog.Info("Weather provider logging enabled")
	}

	tokenService, err := security.NewJWTTokenService(
		c.config.Auth.JWTSecret,
		time.Duration(c.config.Auth.TokenTTLMinutes)*time.Minute,
	)
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		// Weather
		WeatherProvider:   weatherProvider,
		GeocodingProvider: geocodingProvider,
		SearchCache:       external.NewSearchCacheAdapter(cache, c.metrics),

		// Persistence
		LocationRepository: database.NewLocationRepositoryAdapter(c.db),
		UserRepository:     database.NewUserRepositoryAdapter(c.db),

		// Security
		TokenService:   tokenService,
		PasswordHasher: security.NewBcryptHasher(c.config.Auth.BcryptCost),

		// Cache
		CacheProvider: cache,
		CacheMetrics:  cache,

		// Infrastructure
		ConfigProvider:   configProvider,
		Logger:           logger,
		MetricsCollector: c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// ApplicationPorts returns the wired ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// HealthChecker builds the aggregate checker over the database, cache and both OpenWeather breakers
func (c *DependencyContainer) HealthChecker() ports.SystemHealthChecker {
	reporters := make([]infrastructure.BreakerStateReporter, 0, len(c.clients))
	for _, client := range c.clients {
		reporters = append(reporters, client)
	}

	return infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:   infrastructure.NewDatabaseHealthChecker(c.db),
		CacheChecker:      infrastructure.NewCacheHealthChecker(c.config.Cache.Type.String(), c.cache),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(reporters...),
		ConfigProvider:    c.ports.ConfigProvider,
	})
}

// Metrics returns the Prometheus collector shared by all adapters
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases the cache connection and the database pool
func (c *DependencyContainer) Cleanup() error {
	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			slog.Warn("Error closing cache", "error", err)
		}
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			return db.Close()
		}
	}
	return nil
}
