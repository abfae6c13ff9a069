package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_TotalPages(t *testing.T) {
	for n := 0; n <= 23; n++ {
		_, total := Paginate(seq(n), 1, 5)

		expected := (n + 4) / 5
		assert.Equal(t, expected, total, "n=%d", n)
		assert.Equal(t, n == 0, total == 0, "n=%d", n)
	}
}

func TestPaginate_Windows(t *testing.T) {
	items := seq(12)

	tests := []struct {
		name     string
		page     int
		expected []int
	}{
		{"FirstPage", 1, []int{0, 1, 2, 3, 4}},
		{"SecondPage", 2, []int{5, 6, 7, 8, 9}},
		{"PartialLastPage", 3, []int{10, 11}},
		{"OneStepPastEnd", 4, []int{10, 11}},
		{"TwoStepsPastEnd", 5, []int{}},
		{"ZeroPage", 0, []int{}},
		{"NegativePage", -2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, total := Paginate(items, tt.page, 5)

			assert.Equal(t, 3, total)
			assert.Equal(t, tt.expected, window)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	window, total := Paginate([]int{}, 1, 5)
	assert.Empty(t, window)
	assert.Equal(t, 0, total)

	window, total = Paginate([]int(nil), 3, 5)
	assert.Empty(t, window)
	assert.Equal(t, 0, total)
}

func TestPaginate_InvalidSizeFallsBackToDefault(t *testing.T) {
	window, total := Paginate(seq(7), 1, 0)

	assert.Equal(t, 2, total)
	assert.Len(t, window, DefaultPageSize)
}

func TestPaginate_WindowIsACopy(t *testing.T) {
	items := seq(6)
	window, _ := Paginate(items, 1, 5)
	window[0] = 100

	assert.Equal(t, 0, items[0])
}
