package ports

import "context"

// CurrentWeatherData is the provider's answer for one coordinate pair
type CurrentWeatherData struct {
	Description string
	Temperature float64
	FeelsLike   float64
	WindSpeed   float64
}

// WeatherProvider defines the contract for current weather lookups
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeatherData, error)
	GetProviderName() string
}
