package validation

import (
	"regexp"
	"strings"
)

var latinAlphanumericRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsLatinAlphanumeric reports whether s consists only of latin letters and digits
func IsLatinAlphanumeric(s string) bool {
	return latinAlphanumericRegex.MatchString(s)
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidLatitude checks the [-90, 90] range
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks the [-180, 180] range
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
