package weather

import (
	"context"
	stderrors "errors"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// Fetcher performs exactly one upstream weather call per location, bounded by a timeout
type Fetcher struct {
	provider ports.WeatherProvider
	config   ports.ConfigProvider
	logger   ports.Logger
}

type FetcherDependencies struct {
	Provider ports.WeatherProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
}

func NewFetcher(deps FetcherDependencies) (*Fetcher, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Fetcher{
		provider: deps.Provider,
		config:   deps.Config,
		logger:   deps.Logger,
	}, nil
}

// Fetch returns current conditions at the given coordinates.
// Every failure is reported as an UpstreamWeatherError; there are no retries.
func (f *Fetcher) Fetch(ctx context.Context, lat, lon float64) (Conditions, error) {
	timeout := f.config.GetWeatherConfig().RequestTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	data, err := f.provider.GetCurrentWeather(ctx, lat, lon)
	if err != nil {
		f.logger.Debug("Weather fetch failed",
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("error", err))
		return Conditions{}, toUpstreamError(ctx, err)
	}
	if data == nil {
		return Conditions{}, errors.NewUpstreamWeatherError("weather provider returned no data", nil)
	}

	return NewConditions(data), nil
}

func toUpstreamError(ctx context.Context, err error) error {
	if errors.IsUpstreamWeatherError(err) {
		return err
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewUpstreamWeatherError("weather request timed out", err)
	}
	return errors.NewUpstreamWeatherError("weather provider failed", err)
}
