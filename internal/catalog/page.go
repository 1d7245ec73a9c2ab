// Package catalog narrows, orders and paginates storefront listings and blog posts.
// Every function here is pure: inputs are never mutated and nothing fails.
package catalog

const (
	// DomainPageSize is the number of listings per catalog page.
	DomainPageSize = 20
	// BlogPageSize is the number of posts per blog page.
	BlogPageSize = 10
)

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate returns page number page (1-based) of items. Pages below 1 are
// clamped to 1; a page past the end yields empty Items with Total intact.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		return p
	}
	end := min(start+size, total)

	p.Items = make([]T, end-start)
	copy(p.Items, items[start:end])
	return p
}
