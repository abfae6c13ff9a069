package location

const DefaultPageSize = 5

// Paginate returns the window of items for page and the total number of pages.
//
// A page past the end is moved back by exactly one step, not clamped to the last
// page. That mirrors the behavior users have always seen, although it is probably
// a latent bug: page 5 of 3 yields page 4, which is still empty.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size < 1 {
		size = DefaultPageSize
	}

	n := len(items)
	totalPages := n / size
	if n%size != 0 {
		totalPages++
	}

	if page > totalPages && totalPages > 0 {
		page--
	}
	if page < 1 {
		return []T{}, totalPages
	}

	start, end := 0, size
	if page != 1 {
		start, end = page*size-size, page*size
	}

	return window(items, start, end), totalPages
}

func window[T any](items []T, start, end int) []T {
	n := len(items)
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
