package location

import (
	"fmt"
	"strings"

	"weathertracker.app/pkg/validation"
)

const defaultState = "-"

// Query is a named geographic point as returned by a search
type Query struct {
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	State     string
}

// Validate checks that the coordinates are on the globe
func (q Query) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !validation.IsValidLatitude(q.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(q.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// SavedLocation is a Query persisted for one owner
type SavedLocation struct {
	ID      uint
	OwnerID uint
	Query
}

// WeatherReading is one dashboard card. It is computed per request and never stored.
type WeatherReading struct {
	LocationID  uint
	Name        string
	Country     string
	State       string
	Condition   string
	Temperature int
	FeelsLike   int
	WindSpeed   float64
}

// Page is a window over the owner's readings
type Page struct {
	Items       []WeatherReading
	CurrentPage int
	TotalPages  int
}

// Form is the add-location form as submitted by the browser
type Form struct {
	Name    string
	Lat     float64
	Lon     float64
	Country string
	State   string
}

// ResultParams drives the dashboard query. CurrentPage is the sticky page carried
// across a delete redirect; nil means absent.
type ResultParams struct {
	Page        int
	CurrentPage *int
	Token       string
}

func normalizeState(state string) string {
	if strings.TrimSpace(state) == "" {
		return defaultState
	}
	return state
}
