package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a domain name offered for sale in the marketplace.
//
// Extension is stored alongside Name and is authoritative for zone filtering;
// it is never re-derived from Name on read.
type Listing struct {
	ID        uuid.UUID
	Name      string
	Price     int64
	Category  string
	Extension string

	Description           *string
	RegisteredYear        *int
	Traffic               *int
	RegistrationDate      *time.Time
	FirstRegistrationDate *time.Time
	ListedDate            *time.Time

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Label returns the part of the listing name before the first dot.
func (l Listing) Label() string {
	return Label(l.Name)
}

// LabelLength returns the label length in code points.
func (l Listing) LabelLength() int {
	return LabelLength(l.Name)
}

// FacetCount is the number of active listings sharing a category or extension value.
type FacetCount struct {
	Value string
	Count int
}

// Facets lists the distinct filter values present among active listings.
type Facets struct {
	Categories []FacetCount
	Extensions []FacetCount
}
