package external

import (
	"context"
	"time"

	"weathertracker.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, lat, lon float64) (*ports.CurrentWeatherData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Debug("Weather API request started",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "request"))

	startTime := time.Now()
	weatherData, err := d.provider.GetCurrentWeather(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", weatherData.Temperature),
		ports.F("description", weatherData.Description))

	return weatherData, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// GeocodingProviderLoggingDecorator decorates geocoding lookups with structured logging
type GeocodingProviderLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

func NewGeocodingProviderLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) ports.GeocodingProvider {
	return &GeocodingProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FindPlaces wraps the lookup with structured logging
func (d *GeocodingProviderLoggingDecorator) FindPlaces(ctx context.Context, query string, limit int) ([]ports.PlaceData, error) {
	d.logger.Debug("Geocoding request started",
		ports.F("query", query),
		ports.F("limit", limit),
		ports.F("event", "request"))

	startTime := time.Now()
	places, err := d.provider.FindPlaces(ctx, query, limit)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding request failed",
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding request completed",
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("candidates", len(places)))

	return places, nil
}
