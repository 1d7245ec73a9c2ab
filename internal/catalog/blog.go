package catalog

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// BlogFilter holds the blog listing parameters.
type BlogFilter struct {
	// Search is a case-insensitive substring matched against title and excerpt.
	Search   string
	Category string
	Page     int
}

// ParseBlogFilter reads blog parameters from a query string.
func ParseBlogFilter(q url.Values) BlogFilter {
	return BlogFilter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Page:     ParsePage(q.Get("page")),
	}
}

// BlogPage is a blog listing page. Featured is set on page 1 only.
type BlogPage struct {
	Page[domain.BlogPost]
	Featured *domain.BlogPost
}

// FilterPosts returns published posts matching f, newest first.
func FilterPosts(posts []domain.BlogPost, f BlogFilter) []domain.BlogPost {
	fold := cases.Fold()
	needle := fold.String(f.Search)

	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if !p.IsPublished {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(p.Title), needle) &&
			!strings.Contains(fold.String(p.Excerpt), needle) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b domain.BlogPost) int {
		return b.PublishedDate.Compare(a.PublishedDate)
	})
	return out
}

// QueryPosts filters and paginates posts, then promotes the featured post.
func QueryPosts(posts []domain.BlogPost, f BlogFilter) BlogPage {
	return WithFeatured(Paginate(FilterPosts(posts, f), f.Page, BlogPageSize))
}

// WithFeatured moves the first item of page 1 into Featured. Other pages, and
// an empty page 1, pass through unchanged. Total and TotalPages are not adjusted.
func WithFeatured(p Page[domain.BlogPost]) BlogPage {
	if p.Page != 1 || len(p.Items) == 0 {
		return BlogPage{Page: p}
	}

	featured := p.Items[0]
	p.Items = p.Items[1:]
	return BlogPage{Page: p, Featured: &featured}
}
