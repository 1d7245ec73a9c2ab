package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a contact-form submission: a purchase request, a price offer,
// a request to sell a domain through the marketplace, or a general question.
// DomainName references a listing by name only; there is no foreign key.
type Lead struct {
	ID         uuid.UUID
	Type       LeadType
	Name       string
	Email      string
	Phone      *string
	Message    *string
	DomainName string
	OfferPrice *int64
	Status     LeadStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
