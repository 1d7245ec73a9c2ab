package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// DomainFilter holds the catalog query parameters. Zero values impose no constraint.
type DomainFilter struct {
	// Search is a case-insensitive substring matched against the listing name only.
	Search string

	// Category is compared case-sensitively.
	Category string

	// Extension is compared exactly against the stored extension, e.g. ".ru".
	Extension string

	// PriceFrom and PriceTo are inclusive bounds. PriceFrom > PriceTo matches nothing.
	PriceFrom *int64
	PriceTo   *int64

	Length LengthBucket
	Sort   SortKey

	// Page is 1-based; values below 1 are treated as 1.
	Page int
}

// ParseDomainFilter reads catalog parameters from a query string.
// Numbers that fail to parse are treated as absent.
func ParseDomainFilter(q url.Values) DomainFilter {
	return DomainFilter{
		Search:    strings.TrimSpace(q.Get("search")),
		Category:  strings.TrimSpace(q.Get("category")),
		Extension: strings.TrimSpace(q.Get("extension")),
		PriceFrom: parseInt64(q.Get("priceFrom")),
		PriceTo:   parseInt64(q.Get("priceTo")),
		Length:    ParseLength(q.Get("length")),
		Sort:      ParseSort(q.Get("sort")),
		Page:      ParsePage(q.Get("page")),
	}
}

// ParsePage parses a 1-based page number; anything unparsable or below 1 yields 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parseInt64(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Match reports whether l satisfies every constraint set on f.
// Activity is not checked here; see FilterListings.
func (f DomainFilter) Match(l domain.Listing) bool {
	return newListingMatcher(f)(l)
}

func newListingMatcher(f DomainFilter) func(domain.Listing) bool {
	var needle string
	fold := cases.Fold()
	if f.Search != "" {
		needle = fold.String(f.Search)
	}

	return func(l domain.Listing) bool {
		if needle != "" && !strings.Contains(fold.String(l.Name), needle) {
			return false
		}
		if f.Category != "" && l.Category != f.Category {
			return false
		}
		if f.Extension != "" && l.Extension != f.Extension {
			return false
		}
		if f.PriceFrom != nil && l.Price < *f.PriceFrom {
			return false
		}
		if f.PriceTo != nil && l.Price > *f.PriceTo {
			return false
		}
		return f.Length.Match(l.LabelLength())
	}
}

// FilterListings returns the active listings that satisfy f, preserving input order.
// The input slice is not modified.
func FilterListings(items []domain.Listing, f DomainFilter) []domain.Listing {
	match := newListingMatcher(f)

	out := make([]domain.Listing, 0, len(items))
	for _, l := range items {
		if l.IsActive && match(l) {
			out = append(out, l)
		}
	}
	return out
}

// QueryListings filters, sorts and paginates candidates into one catalog page.
func QueryListings(candidates []domain.Listing, f DomainFilter) Page[domain.Listing] {
	matched := FilterListings(candidates, f)
	SortListings(matched, f.Sort)
	return Paginate(matched, f.Page, DomainPageSize)
}
