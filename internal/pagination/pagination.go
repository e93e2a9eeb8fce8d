// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

// PageSize is the number of items on a page
const PageSize = 10

// ParsePage reads a 1-based page number from a query value.
// Missing, non-numeric and non-positive values select the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns items [(page-1)*PageSize, page*PageSize).
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	// compare page counts first so a huge page cannot overflow the offset
	if page > (len(items)+PageSize-1)/PageSize {
		return []T{}
	}

	start := (page - 1) * PageSize

	end := min(start+PageSize, len(items))
	return items[start:end]
}
