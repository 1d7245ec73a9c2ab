package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/domainmarket-backend/internal/catalog"
	"github.com/heartmarshall/domainmarket-backend/internal/domain"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
)

func newBlogMux(svc blogService) *http.ServeMux {
	h := NewBlogHandler(svc, slog.Default())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /blog", h.List)
	mux.HandleFunc("GET /blog/{slug}", h.Get)
	return mux
}

func post(slug string, day int) domain.BlogPost {
	return domain.BlogPost{
		Slug:          slug,
		Title:         "Title " + slug,
		Excerpt:       "Excerpt " + slug,
		Category:      "Советы",
		ReadTime:      "5 мин",
		PublishedDate: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		IsPublished:   true,
	}
}

func TestBlogHandler_List_FirstPageHasFeatured(t *testing.T) {
	t.Parallel()

	var got catalog.BlogFilter
	svc := &blogServiceFake{
		listFn: func(_ context.Context, f catalog.BlogFilter) (catalog.BlogPage, error) {
			got = f
			return catalog.QueryPosts([]domain.BlogPost{post("a", 1), post("b", 2), post("c", 3)}, f), nil
		},
	}

	rec := httptest.NewRecorder()
	newBlogMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog?category=%D0%A1%D0%BE%D0%B2%D0%B5%D1%82%D1%8B", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Советы", got.Category)
	assert.Equal(t, 1, got.Page)

	var body struct {
		Items    []postSummaryResponse `json:"items"`
		Total    int                   `json:"total"`
		Featured *postSummaryResponse  `json:"featured"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.Featured)
	assert.Equal(t, "c", body.Featured.Slug)
	assert.Equal(t, "2024-01-03", body.Featured.PublishedDate)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "b", body.Items[0].Slug)
	assert.Equal(t, 3, body.Total)
}

func TestBlogHandler_List_LaterPageOmitsFeatured(t *testing.T) {
	t.Parallel()

	posts := make([]domain.BlogPost, 0, 12)
	for d := 1; d <= 12; d++ {
		posts = append(posts, post(string(rune('a'+d-1)), d))
	}
	svc := &blogServiceFake{
		listFn: func(_ context.Context, f catalog.BlogFilter) (catalog.BlogPage, error) {
			return catalog.QueryPosts(posts, f), nil
		},
	}

	rec := httptest.NewRecorder()
	newBlogMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog?page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, hasFeatured := body["featured"]
	assert.False(t, hasFeatured)
	assert.Len(t, body["items"], 2)
	assert.Equal(t, float64(2), body["totalPages"])
}

func TestBlogHandler_Get(t *testing.T) {
	t.Parallel()

	svc := &blogServiceFake{
		getFn: func(_ context.Context, slug string) (*blog.Post, error) {
			p := post(slug, 5)
			p.Content = "## Intro\n- one\n- two\nBody text"
			return &blog.Post{BlogPost: p, Blocks: domain.ParseContent(p.Content)}, nil
		},
	}

	rec := httptest.NewRecorder()
	newBlogMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/how-to-buy", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"slug":"how-to-buy","title":"Title how-to-buy","excerpt":"Excerpt how-to-buy",
		"category":"Советы","readTime":"5 мин","publishedDate":"2024-01-05",
		"content":"## Intro\n- one\n- two\nBody text",
		"blocks":[
			{"kind":"heading2","text":"Intro"},
			{"kind":"list","items":["one","two"]},
			{"kind":"paragraph","text":"Body text"}
		]
	}`, rec.Body.String())
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := &blogServiceFake{
		getFn: func(context.Context, string) (*blog.Post, error) {
			return nil, domain.ErrNotFound
		},
	}

	rec := httptest.NewRecorder()
	newBlogMux(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/draft", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
