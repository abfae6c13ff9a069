package location

import (
	"strings"

	"weathertracker.app/internal/ports"
)

// FilterPlaces keeps the candidates that plausibly match query.
//
// A candidate whose local names mention the query is renamed to its Russian
// local name when one exists; local names are dropped either way. The candidate
// is kept when its name contains the query or the Latin transliteration of the
// query's first character. Input order is preserved and nothing is deduplicated.
// query must be non-empty.
func FilterPlaces(query string, candidates []ports.PlaceData) []ports.PlaceData {
	firstLatin := transliterateFirst(query)
	result := make([]ports.PlaceData, 0, len(candidates))

	for _, place := range candidates {
		if place.LocalNames != nil {
			if localNamesMention(place.LocalNames, query) {
				if ru := place.LocalNames["ru"]; ru != "" {
					place.Name = ru
				}
			}
			place.LocalNames = nil
		}

		if strings.Contains(place.Name, query) || strings.Contains(place.Name, firstLatin) {
			result = append(result, place)
		}
	}

	return result
}

func localNamesMention(names map[string]string, query string) bool {
	for _, name := range names {
		if strings.Contains(name, query) {
			return true
		}
	}
	return false
}

func toQuery(place ports.PlaceData) Query {
	return Query{
		Name:      place.Name,
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Country:   place.Country,
		State:     normalizeState(place.State),
	}
}
