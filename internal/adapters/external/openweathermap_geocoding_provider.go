package external

import (
	"context"
	"net/url"
	"strconv"

	"weathertracker.app/internal/ports"
	"weathertracker.app/pkg/errors"
)

// OpenWeatherGeocodingAdapter implements GeocodingProvider using the OpenWeather direct geocoding API
type OpenWeatherGeocodingAdapter struct {
	client *OpenWeatherClient
	lang   string
}

type geocodingRecord struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

// NewOpenWeatherGeocodingAdapter creates a new geocoding adapter
func NewOpenWeatherGeocodingAdapter(client *OpenWeatherClient, lang string) *OpenWeatherGeocodingAdapter {
	return &OpenWeatherGeocodingAdapter{client: client, lang: lang}
}

// FindPlaces returns up to limit candidate places for query in provider order
func (g *OpenWeatherGeocodingAdapter) FindPlaces(ctx context.Context, query string, limit int) ([]ports.PlaceData, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("lang", g.lang)

	var records []geocodingRecord
	if err := g.client.GetJSON(ctx, "direct", params, &records); err != nil {
		return nil, errors.NewUpstreamGeocodingError("failed to find places", err)
	}

	places := make([]ports.PlaceData, 0, len(records))
	for _, r := range records {
		places = append(places, ports.PlaceData{
			Name:       r.Name,
			Latitude:   r.Lat,
			Longitude:  r.Lon,
			Country:    r.Country,
			State:      r.State,
			LocalNames: r.LocalNames,
		})
	}
	return places, nil
}
