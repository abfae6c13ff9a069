package weather

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"weathertracker.app/internal/ports"
)

// Conditions is the current weather at one saved location, shaped for display
type Conditions struct {
	Description string
	Temperature int
	FeelsLike   int
	WindSpeed   float64
}

// NewConditions maps a provider reading to display conditions
func NewConditions(data *ports.CurrentWeatherData) Conditions {
	return Conditions{
		Description: CapitalizeSentence(data.Description),
		Temperature: RoundTemperature(data.Temperature),
		FeelsLike:   RoundTemperature(data.FeelsLike),
		WindSpeed:   data.WindSpeed,
	}
}

// Capitalize upper-cases the first rune and leaves the rest untouched
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CapitalizeSentence upper-cases the first rune and lower-cases the rest
func CapitalizeSentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// RoundTemperature rounds to the nearest integer, halves to even
func RoundTemperature(t float64) int {
	return int(math.RoundToEven(t))
}

// String returns a string representation of the conditions
func (c Conditions) String() string {
	return fmt.Sprintf("%s: %d°C (feels like %d°C), wind %.1f m/s",
		c.Description, c.Temperature, c.FeelsLike, c.WindSpeed)
}
