package rest

import (
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
)

const dateLayout = "2006-01-02"

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func toPageResponse[S, T any](p catalog.Page[S], conv func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return pageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

type listingResponse struct {
	Name                  string  `json:"name"`
	Price                 int64   `json:"price"`
	Category              string  `json:"category"`
	Extension             string  `json:"extension"`
	Description           *string `json:"description,omitempty"`
	RegisteredYear        *int    `json:"registeredYear,omitempty"`
	Traffic               *int    `json:"traffic,omitempty"`
	RegistrationDate      *string `json:"registrationDate,omitempty"`
	FirstRegistrationDate *string `json:"firstRegistrationDate,omitempty"`
	ListedDate            *string `json:"listedDate,omitempty"`
}

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
		Name:                  l.Name,
		Price:                 l.Price,
		Category:              l.Category,
		Extension:             l.Extension,
		Description:           l.Description,
		RegisteredYear:        l.RegisteredYear,
		Traffic:               l.Traffic,
		RegistrationDate:      formatDate(l.RegistrationDate),
		FirstRegistrationDate: formatDate(l.FirstRegistrationDate),
		ListedDate:            formatDate(l.ListedDate),
	}
}

type listingDetailResponse struct {
	listingResponse
	Similar []listingResponse `json:"similar"`
}

type facetResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type facetsResponse struct {
	Categories []facetResponse `json:"categories"`
	Extensions []facetResponse `json:"extensions"`
}

func toFacetsResponse(f domain.Facets) facetsResponse {
	conv := func(in []domain.FacetCount) []facetResponse {
		out := make([]facetResponse, len(in))
		for i, fc := range in {
			out[i] = facetResponse{Value: fc.Value, Count: fc.Count}
		}
		return out
	}
	return facetsResponse{Categories: conv(f.Categories), Extensions: conv(f.Extensions)}
}

type postSummaryResponse struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Category      string `json:"category"`
	ReadTime      string `json:"readTime"`
	PublishedDate string `json:"publishedDate"`
}

func toPostSummary(p domain.BlogPost) postSummaryResponse {
	return postSummaryResponse{
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Category:      p.Category,
		ReadTime:      p.ReadTime,
		PublishedDate: p.PublishedDate.Format(dateLayout),
	}
}

type blogPageResponse struct {
	pageResponse[postSummaryResponse]
	Featured *postSummaryResponse `json:"featured,omitempty"`
}

func toBlogPageResponse(p catalog.BlogPage) blogPageResponse {
	resp := blogPageResponse{pageResponse: toPageResponse(p.Page, toPostSummary)}
	if p.Featured != nil {
		f := toPostSummary(*p.Featured)
		resp.Featured = &f
	}
	return resp
}

type blockResponse struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

type postResponse struct {
	postSummaryResponse
	Content string          `json:"content"`
	Blocks  []blockResponse `json:"blocks"`
}

func toPostResponse(p *blog.Post) postResponse {
	blocks := make([]blockResponse, len(p.Blocks))
	for i, b := range p.Blocks {
		blocks[i] = blockResponse{Kind: string(b.Kind), Text: b.Text, Items: b.Items}
	}
	return postResponse{
		postSummaryResponse: toPostSummary(p.BlogPost),
		Content:             p.Content,
		Blocks:              blocks,
	}
}

type leadResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	DomainName string    `json:"domainName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toLeadResponse(l *domain.Lead) leadResponse {
	return leadResponse{
		ID:         l.ID.String(),
		Type:       l.Type.String(),
		Status:     l.Status.String(),
		DomainName: l.DomainName,
		CreatedAt:  l.CreatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
