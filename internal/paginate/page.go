package paginate

// DefaultPageSize is the number of rows shown per table page.
const DefaultPageSize = 10

// Page returns items[cursor*pageSize : cursor*pageSize+pageSize], clamped
// to the slice bounds. Out of range cursors yield an empty page.
func Page[T any](items []T, cursor, pageSize int) []T {
	if cursor < 0 || pageSize <= 0 {
		return []T{}
	}
	start := cursor * pageSize
	if start >= len(items) || start/pageSize != cursor {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) || end < start {
		end = len(items)
	}
	return items[start:end]
}

// CanGoBack reports whether a previous page exists.
func CanGoBack(cursor int) bool {
	return cursor > 0
}

// CanGoForward guesses whether another page exists. The total count is
// unknown, so a full current page is taken to mean more rows follow.
func CanGoForward(currentPageItemCount, pageSize int) bool {
	return currentPageItemCount >= pageSize
}
