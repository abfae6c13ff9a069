package location

import (
	"context"

	"golang.org/x/sync/errgroup"
	"weathertracker.app/internal/core/weather"
)

const defaultFetchConcurrency = 4

// WeatherFetcher returns current conditions for a coordinate pair
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (weather.Conditions, error)
}

// Aggregator joins saved locations with their current weather
type Aggregator struct {
	fetcher     WeatherFetcher
	concurrency int
}

func NewAggregator(fetcher WeatherFetcher, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = defaultFetchConcurrency
	}
	return &Aggregator{fetcher: fetcher, concurrency: concurrency}
}

// Aggregate fetches weather for every location. The result has the input order.
// The first failure cancels the outstanding fetches and is returned alone.
func (a *Aggregator) Aggregate(ctx context.Context, locations []SavedLocation) ([]WeatherReading, error) {
	readings := make([]WeatherReading, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, loc := range locations {
		g.Go(func() error {
			conditions, err := a.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return err
			}
			readings[i] = WeatherReading{
				LocationID:  loc.ID,
				Name:        loc.Name,
				Country:     loc.Country,
				State:       loc.State,
				Condition:   conditions.Description,
				Temperature: conditions.Temperature,
				FeelsLike:   conditions.FeelsLike,
				WindSpeed:   conditions.WindSpeed,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return readings, nil
}
