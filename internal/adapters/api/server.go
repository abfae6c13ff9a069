// Package api provides the HTML front end of the tracker.
// Handlers translate browser forms and cookies into use case calls.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathertracker.app/internal/core/location"
	"weathertracker.app/internal/core/user"
	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port         int
	CookieSecure bool
	TokenTTL     time.Duration
}

// HTTPServerAdapter serves the dashboard, auth pages and operational endpoints
type HTTPServerAdapter struct {
	router          *gin.Engine
	config          ServerConfig
	locationUseCase LocationUseCase
	userUseCase     UserUseCase
	healthChecker   ports.SystemHealthChecker
	cacheMetrics    ports.CacheMetrics
	metricsHandler  http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type LocationUseCase interface {
	GetResultLocations(ctx context.Context, params location.ResultParams) (*location.Page, error)
	AddLocation(ctx context.Context, owner user.User, form location.Form) (*location.SavedLocation, error)
	DeleteLocation(ctx context.Context, owner user.User, id uint) error
	SearchLocations(ctx context.Context, city string) ([]location.Query, error)
}

type UserUseCase interface {
	Register(ctx context.Context, params user.RegisterParams) (*user.User, error)
	Login(ctx context.Context, params user.LoginParams) (string, error)
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	LocationUseCase LocationUseCase
	UserUseCase     UserUseCase
	HealthChecker   ports.SystemHealthChecker
	CacheMetrics    ports.CacheMetrics
	MetricsHandler  http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLoggerMiddleware())
	router.SetHTMLTemplate(templates)

	server := &HTTPServerAdapter{
		router:          router,
		config:          opts.Config,
		locationUseCase: opts.LocationUseCase,
		userUseCase:     opts.UserUseCase,
		healthChecker:   opts.HealthChecker,
		cacheMetrics:    opts.CacheMetrics,
		metricsHandler:  opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.LocationUseCase == nil {
		return errors.NewValidationError("location use case is required")
	}
	if opts.UserUseCase == nil {
		return errors.NewValidationError("user use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.CacheMetrics == nil {
		return errors.NewValidationError("cache metrics are required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getDashboard)
	s.router.GET("/authorization", s.getAuthorizationPage)
	s.router.GET("/registration", s.getRegistrationPage)
	s.router.POST("/register", s.register)
	s.router.POST("/token", s.login)
	s.router.POST("/logout", s.logout)

	authorized := s.router.Group("/", s.requireUser)
	{
		authorized.GET("/locations", s.searchLocations)
		authorized.POST("/add_location", s.addLocation)
		authorized.POST("/delete_location", s.deleteLocation)
	}

	s.router.GET("/healthz", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	s.router.GET("/api/metrics", s.getMetrics)

	s.setupStaticFiles()
}

// GetRouter returns the router for the HTTP server and for tests
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Address returns the listen address for the configured port
func (s *HTTPServerAdapter) Address() string {
	return fmt.Sprintf(":%d", s.config.Port)
}
