package catalog

import (
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

func listing(name string, price int64, ext string) domain.Listing {
	return domain.Listing{
		Name:      name,
		Price:     price,
		Extension: ext,
		Category:  "general",
		IsActive:  true,
	}
}

func ptr[T any](v T) *T { return &v }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func names(items []domain.Listing) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
