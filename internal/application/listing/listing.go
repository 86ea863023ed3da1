// Package listing implements the list-view semantics the UI relies on:
// case-insensitive substring search over a fixed per-entity field subset,
// and pagination of the filtered result at a fixed page size.
package listing

import "strings"

// PageSize rows per page in every list view.
const PageSize = 25

// Filter returns the items whose search fields contain query as a
// case-insensitive substring. An empty query keeps everything. The fields
// callback exposes the entity's documented search subset.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Page returns the 1-based page of items at PageSize. Pages partition the
// slice: no row is dropped or repeated across consecutive pages, and the
// last page holds the remainder. Out-of-range pages come back empty.
func Page[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns how many pages n items occupy.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}
