package lead

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

// SubmitInput is a lead as entered in a storefront form.
// Field names in validation errors follow the json tags.
type SubmitInput struct {
	Type       domain.LeadType `json:"type"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone"`
	Message    *string         `json:"message"`
	DomainName string          `json:"domainName"`
	OfferPrice *int64          `json:"offerPrice"`
}

// normalized trims text fields, drops blank optionals and defaults Type to general.
func (i SubmitInput) normalized() SubmitInput {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.DomainName = domain.NormalizeName(i.DomainName)
	i.Phone = trimOrNil(i.Phone)
	i.Message = trimOrNil(i.Message)
	if i.Type == "" {
		i.Type = domain.LeadTypeGeneral
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.In(
			domain.LeadTypeBuy, domain.LeadTypeOffer, domain.LeadTypeGeneral, domain.LeadTypeSellOffer,
		).Error("must be one of buy, offer, general, sell_offer")),
		validation.Field(&i.Name, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&i.Email, validation.Required, validation.Length(3, 254), is.EmailFormat),
		validation.Field(&i.Phone, validation.NilOrNotEmpty, validation.RuneLength(0, 32)),
		validation.Field(&i.Message, validation.RuneLength(0, 5000)),
		validation.Field(&i.DomainName, validation.Required, validation.RuneLength(1, 253)),
		validation.Field(&i.OfferPrice,
			validation.When(i.Type == domain.LeadTypeOffer, validation.Required.Error("required for offers")),
			validation.Min(int64(1)).Error("must be greater than 0"),
		),
	)
	return toValidationError(err)
}

// toValidationError converts ozzo errors into a domain.ValidationError,
// ordered by field name. Internal rule errors are returned unchanged.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]domain.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, domain.FieldError{Field: f, Message: errs[f].Error()})
	}
	return domain.NewValidationErrors(out)
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
