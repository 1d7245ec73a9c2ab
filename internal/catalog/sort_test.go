package catalog

import (
	"testing"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want SortKey
	}{
		{"", SortPriceDesc},
		{"price_desc", SortPriceDesc},
		{"price_asc", SortPriceAsc},
		{"NAME_ASC", SortNameAsc},
		{"name_desc", SortNameDesc},
		{"newest", SortNewest},
		{"popular", SortPriceDesc},
	}
	for _, tt := range tests {
		if got := ParseSort(tt.raw); got != tt.want {
			t.Errorf("ParseSort(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSortListings(t *testing.T) {
	t.Parallel()

	base := func() []domain.Listing {
		a := listing("beta.ru", 500, ".ru")
		a.ListedDate = day("2024-03-01")
		b := listing("alpha.ru", 900, ".ru")
		b.ListedDate = day("2024-05-01")
		c := listing("gamma.ru", 100, ".ru")
		d := listing("delta.ru", 500, ".ru")
		d.ListedDate = day("2024-01-01")
		return []domain.Listing{a, b, c, d}
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortPriceDesc, []string{"alpha.ru", "beta.ru", "delta.ru", "gamma.ru"}},
		{SortPriceAsc, []string{"gamma.ru", "beta.ru", "delta.ru", "alpha.ru"}},
		{SortNameAsc, []string{"alpha.ru", "beta.ru", "delta.ru", "gamma.ru"}},
		{SortNameDesc, []string{"gamma.ru", "delta.ru", "beta.ru", "alpha.ru"}},
		{SortNewest, []string{"alpha.ru", "beta.ru", "delta.ru", "gamma.ru"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			items := base()
			SortListings(items, tt.key)
			if !equalStrings(names(items), tt.want) {
				t.Errorf("got %v, want %v", names(items), tt.want)
			}
		})
	}
}

func TestSortListings_PriceTiesKeepOrder(t *testing.T) {
	t.Parallel()

	items := []domain.Listing{
		listing("z.ru", 100, ".ru"),
		listing("a.ru", 100, ".ru"),
		listing("m.ru", 100, ".ru"),
	}
	SortListings(items, SortPriceDesc)

	if want := []string{"z.ru", "a.ru", "m.ru"}; !equalStrings(names(items), want) {
		t.Errorf("got %v, want %v", names(items), want)
	}
}
