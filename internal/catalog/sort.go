package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortPriceDesc SortKey = "price_desc"
	SortPriceAsc  SortKey = "price_asc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortNewest    SortKey = "newest"
)

// ParseSort maps a query token to a sort key, defaulting to SortPriceDesc.
func ParseSort(raw string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case SortPriceAsc, SortNameAsc, SortNameDesc, SortNewest:
		return k
	}
	return SortPriceDesc
}

// SortListings orders listings in place. The sort is stable, so listings that
// compare equal keep their incoming order. For SortNewest, listings without a
// listed date go last.
func SortListings(items []domain.Listing, key SortKey) {
	slices.SortStableFunc(items, compareFor(key))
}

func compareFor(key SortKey) func(a, b domain.Listing) int {
	switch key {
	case SortPriceAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.Price, b.Price) }
	case SortNameAsc:
		return func(a, b domain.Listing) int { return strings.Compare(a.Name, b.Name) }
	case SortNameDesc:
		return func(a, b domain.Listing) int { return strings.Compare(b.Name, a.Name) }
	case SortNewest:
		return func(a, b domain.Listing) int {
			switch {
			case a.ListedDate == nil && b.ListedDate == nil:
				return 0
			case a.ListedDate == nil:
				return 1
			case b.ListedDate == nil:
				return -1
			}
			return b.ListedDate.Compare(*a.ListedDate)
		}
	default:
		return func(a, b domain.Listing) int { return cmp.Compare(b.Price, a.Price) }
	}
}
