package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterateRune(t *testing.T) {
	tests := []struct {
		input    rune
		expected string
	}{
		{'м', "m"},
		{'М', "M"},
		{'Ж', "Zh"},
		{'щ', "sch"},
		{'Я', "Ja"},
		{'ь', "'"},
		{'L', "L"},
		{'7', "7"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, TransliterateRune(tt.input))
		})
	}
}

func TestTransliterateFirst(t *testing.T) {
	assert.Equal(t, "M", transliterateFirst("Москва"))
	assert.Equal(t, "L", transliterateFirst("London"))
	assert.Equal(t, "", transliterateFirst(""))
}
