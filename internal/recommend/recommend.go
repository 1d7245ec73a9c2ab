// Package recommend ranks listings by similarity to a reference listing.
package recommend

import (
	"cmp"
	"slices"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// DefaultLimit is the number of recommendations returned when no limit is given.
const DefaultLimit = 4

// Score weights.
const (
	SameExtensionPoints = 10
	PriceNearPoints     = 5
	PriceMidPoints      = 3
	PriceFarPoints      = 1
	LengthPoints        = 2

	maxLengthDiff = 2
)

// Reference is the listing recommendations are computed for.
type Reference struct {
	Name      string
	Price     int64
	Extension string
}

// ReferenceOf builds a Reference from a listing.
func ReferenceOf(l domain.Listing) Reference {
	return Reference{Name: l.Name, Price: l.Price, Extension: l.Extension}
}

// Scored is a candidate with its similarity score.
type Scored struct {
	Listing domain.Listing
	Score   int
}

// Score computes the similarity of candidate c to ref.
func Score(c domain.Listing, ref Reference) int {
	score := 0
	if c.Extension == ref.Extension {
		score += SameExtensionPoints
	}
	score += priceBand(c.Price, ref.Price)

	diff := c.LabelLength() - domain.LabelLength(ref.Name)
	if diff < 0 {
		diff = -diff
	}
	if diff <= maxLengthDiff {
		score += LengthPoints
	}
	return score
}

// priceBand awards points by how close price is to ref. Bounds are exclusive
// and only the first matching band counts, so a reference price of 0 never scores.
func priceBand(price, ref int64) int {
	p := float64(ref)
	d := float64(price - ref)
	if d < 0 {
		d = -d
	}

	switch {
	case d < 0.5*p:
		return PriceNearPoints
	case d < 1.5*p:
		return PriceMidPoints
	case d < 3*p:
		return PriceFarPoints
	}
	return 0
}

// Rank scores every candidate except ref itself and orders them by score,
// highest first. Equal scores keep their pool order.
func Rank(pool []domain.Listing, ref Reference) []Scored {
	out := make([]Scored, 0, len(pool))
	for _, c := range pool {
		if c.Name == ref.Name {
			continue
		}
		out = append(out, Scored{Listing: c, Score: Score(c, ref)})
	}

	slices.SortStableFunc(out, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// Recommend returns up to limit listings from pool most similar to ref.
// A limit of zero or less means DefaultLimit.
func Recommend(pool []domain.Listing, ref Reference, limit int) []domain.Listing {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := Rank(pool, ref)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]domain.Listing, len(ranked))
	for i, s := range ranked {
		out[i] = s.Listing
	}
	return out
}
