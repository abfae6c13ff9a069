package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"weathertracker.app/internal/adapters/api"
	"weathertracker.app/internal/config"
	"weathertracker.app/internal/core/location"
	"weathertracker.app/internal/core/user"
	"weathertracker.app/internal/core/weather"
	"weathertracker.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	userUseCase     *user.UseCase
	locationUseCase *location.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	container *DependencyContainer
	ports     *ports.ApplicationPorts
}

// NewApplication connects to PostgreSQL and wires the whole application
func NewApplication(cfg *config.Config, logger ports.Logger) (*Application, error) {
	db, err := OpenDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewApplicationWithDatabase(cfg, db, logger)
}

// NewApplicationWithDatabase wires the application around db (used by tests with SQLite)
func NewApplicationWithDatabase(cfg *config.Config, db *gorm.DB, logger ports.Logger) (*Application, error) {
	gin.SetMode(cfg.Server.GinMode)

	container, err := NewDependencyContainer(cfg, db, logger)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	userUseCase, err := user.NewUseCase(user.UseCaseDependencies{
		Repository: a.ports.UserRepository,
		Hasher:     a.ports.PasswordHasher,
		Tokens:     a.ports.TokenService,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create user use case: %w", err)
	}
	a.userUseCase = userUseCase

	fetcher, err := weather.NewFetcher(weather.FetcherDependencies{
		Provider: a.ports.WeatherProvider,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather fetcher: %w", err)
	}

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Repository:  a.ports.LocationRepository,
		Geocoder:    a.ports.GeocodingProvider,
		SearchCache: a.ports.SearchCache,
		Fetcher:     fetcher,
		Sessions:    userUseCase,
		Config:      a.ports.ConfigProvider,
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	authConfig := a.ports.ConfigProvider.GetAuthConfig()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:         a.config.Server.Port,
			CookieSecure: authConfig.CookieSecure,
			TokenTTL:     authConfig.TokenTTL,
		},
		LocationUseCase: a.locationUseCase,
		UserUseCase:     a.userUseCase,
		HealthChecker:   a.container.HealthChecker(),
		CacheMetrics:    a.ports.CacheMetrics,
		MetricsHandler:  a.container.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         httpAdapter.Address(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.container.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
