package filter

import "github.com/user/play-gallery-cli/play"

// DefaultPageSize is how many plays a page shows when nothing overrides it.
const DefaultPageSize = 10

// PageCount returns the number of pages needed for n plays at the given
// page size. An empty result still has one (empty) page.
func PageCount(n, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	if n == 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns the window of plays for a 1-based page number. Pages
// outside [1, PageCount] yield an empty window rather than an error; the
// controller clamps before calling, so this is a backstop.
func Paginate(plays []play.Play, page, pageSize int) []play.Play {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(plays) {
		return nil
	}
	end := start + pageSize
	if end > len(plays) {
		end = len(plays)
	}
	return plays[start:end]
}
