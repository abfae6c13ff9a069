package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"weathertracker.app/internal/ports"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ясно", "Ясно"},
		{"облачно с прояснениями", "Облачно с прояснениями"},
		{"light rain", "Light rain"},
		{"Snow", "Snow"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Capitalize(tt.input))
		})
	}
}

func TestCapitalizeSentence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ясно", "Ясно"},
		{"ОБЛАЧНО С ПРОЯСНЕНИЯМИ", "Облачно с прояснениями"},
		{"light Rain", "Light rain"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitalizeSentence(tt.input))
		})
	}
}

func TestRoundTemperature(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{21.4, 21},
		{21.5, 22},
		{2.5, 2},
		{0.5, 0},
		{-2.5, -2},
		{-3.5, -4},
		{-3.4, -3},
		{21.51, 22},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundTemperature(tt.input), "input %v", tt.input)
	}
}

func TestNewConditions(t *testing.T) {
	c := NewConditions(&ports.CurrentWeatherData{
		Description: "небольшой Снег",
		Temperature: -7.6,
		FeelsLike:   -12.2,
		WindSpeed:   4.3,
	})

	assert.Equal(t, Conditions{
		Description: "Небольшой снег",
		Temperature: -8,
		FeelsLike:   -12,
		WindSpeed:   4.3,
	}, c)
	assert.Contains(t, c.String(), "Небольшой снег")
}
