package external

import (
	"context"
	"net/url"
	"strconv"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider using the OpenWeather current weather API
type OpenWeatherMapProviderAdapter struct {
	client *OpenWeatherClient
	lang   string
	units  string
}

// OpenWeatherMapProviderParams holds the query defaults applied to every request
type OpenWeatherMapProviderParams struct {
	Client *OpenWeatherClient
	Lang   string
	Units  string
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	return &OpenWeatherMapProviderAdapter{
		client: params.Client,
		lang:   params.Lang,
		units:  params.Units,
	}
}

// GetCurrentWeather retrieves current weather for a coordinate pair
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, lat, lon float64) (*ports.CurrentWeatherData, error) {
	query := url.Values{}
	query.Set("lat", formatCoordinate(lat))
	query.Set("lon", formatCoordinate(lon))
	query.Set("lang", p.lang)
	query.Set("units", p.units)

	var response openWeatherResponse
	if err := p.client.GetJSON(ctx, "weather", query, &response); err != nil {
		return nil, errors.NewUpstreamWeatherError("failed to get weather data", err)
	}

	if len(response.Weather) == 0 {
		return nil, errors.NewUpstreamWeatherError("weather response has no conditions", nil)
	}

	return &ports.CurrentWeatherData{
		Description: response.Weather[0].Description,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		WindSpeed:   response.Wind.Speed,
	}, nil
}

// GetProviderName returns the provider name
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
