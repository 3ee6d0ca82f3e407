package reconciliation

import "github.com/de-tools/finsync/pkg/models/domain"

const PageSize = 10

// Paginate clamps page into [1, max(1, pages)] and returns the bounds of
// that page over n items.
func Paginate(n, page int) domain.Page {
	pages := (n + PageSize - 1) / PageSize
	last := pages
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return domain.Page{
		Number:     page,
		Size:       PageSize,
		TotalItems: n,
		TotalPages: pages,
		Start:      start,
		End:        end,
	}
}
