package external

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertracker.app/pkg/errors"
)

func TestOpenWeatherMapProvider_GetCurrentWeather_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "55.7558", q.Get("lat"))
		assert.Equal(t, "37.6173", q.Get("lon"))
		assert.Equal(t, "ru", q.Get("lang"))
		assert.Equal(t, "metric", q.Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"cod": 200,
			"weather": [{"description": "ясно"}],
			"main": {"temp": 21.6, "feels_like": 20.4},
			"wind": {"speed": 3.5}
		}`))
		assert.NoError(t, err)
	}, 5)

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{Client: client, Lang: "ru", Units: "metric"})

	weather, err := provider.GetCurrentWeather(context.Background(), 55.7558, 37.6173)

	require.NoError(t, err)
	assert.Equal(t, "ясно", weather.Description)
	assert.Equal(t, 21.6, weather.Temperature)
	assert.Equal(t, 20.4, weather.FeelsLike)
	assert.Equal(t, 3.5, weather.WindSpeed)
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}

func TestOpenWeatherMapProvider_GetCurrentWeather_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "Envelope", status: http.StatusOK, body: `{"cod":"400","message":"wrong latitude"}`},
		{name: "ServerError", status: http.StatusInternalServerError, body: `{}`},
		{name: "NoConditions", status: http.StatusOK, body: `{"cod":200,"weather":[],"main":{"temp":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, 5)
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{Client: client, Lang: "ru", Units: "metric"})

			weather, err := provider.GetCurrentWeather(context.Background(), 1, 2)

			assert.Nil(t, weather)
			assert.True(t, errors.IsUpstreamWeatherError(err))
		})
	}
}

func TestOpenWeatherGeocodingAdapter_FindPlaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "Москва", q.Get("q"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "ru", q.Get("lang"))

		_, _ = w.Write([]byte(`[
			{"name":"Moscow","local_names":{"ru":"Москва","en":"Moscow"},"lat":55.75,"lon":37.61,"country":"RU","state":"Moscow"},
			{"name":"Moscow","lat":46.73,"lon":-117.0,"country":"US"}
		]`))
	}, 5)
	adapter := NewOpenWeatherGeocodingAdapter(client, "ru")

	places, err := adapter.FindPlaces(context.Background(), "Москва", 5)

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Moscow", places[0].Name)
	assert.Equal(t, "Москва", places[0].LocalNames["ru"])
	assert.Equal(t, "Moscow", places[0].State)
	assert.Nil(t, places[1].LocalNames)
	assert.Equal(t, "", places[1].State)
	assert.Equal(t, -117.0, places[1].Longitude)
}

func TestOpenWeatherGeocodingAdapter_FindPlaces_Envelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}, 5)
	adapter := NewOpenWeatherGeocodingAdapter(client, "ru")

	places, err := adapter.FindPlaces(context.Background(), "Paris", 5)

	assert.Nil(t, places)
	assert.True(t, errors.IsUpstreamGeocodingError(err))
}
