//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/domainmarket-backend/internal/adapter/notify"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/blogpost"
	leadrepo "github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/listing"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/domainmarket-backend/internal/app"
	"github.com/heartmarshall/domainmarket-backend/internal/config"
	"github.com/heartmarshall/domainmarket-backend/internal/service/blog"
	"github.com/heartmarshall/domainmarket-backend/internal/service/lead"
	"github.com/heartmarshall/domainmarket-backend/internal/service/market"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/middleware"
	"github.com/heartmarshall/domainmarket-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the storefront stack backed by a real
// PostgreSQL container (shared via testhelper). The cache is disabled so
// every request reads fresh rows.
func setupTestServer(t *testing.T, rateLimit int) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		CORS:    config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Content-Type"},
		Leads:   config.LeadsConfig{RateLimitPerMinute: rateLimit},
		Catalog: config.CatalogConfig{RecommendationLimit: 4},
	}

	marketSvc := market.NewService(logger, listing.New(pool), cfg.Catalog.RecommendationLimit)
	blogSvc := blog.NewService(logger, blogpost.New(pool))
	leadSvc := lead.NewService(logger, leadrepo.New(pool), notify.Noop{})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(logger, cfg, app.Handlers{
		Domains: rest.NewDomainHandler(marketSvc, logger),
		Blog:    rest.NewBlogHandler(blogSvc, logger),
		Leads:   rest.NewLeadHandler(leadSvc, logger),
		Health:  rest.NewHealthHandler(pool, nil, "e2e"),
	}, limiter)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// getJSON issues a GET and decodes the body into a generic map.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// postJSON marshals payload, POSTs it and decodes the response body.
func (ts *testServer) postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// names extracts the "name" field of every item in a page response.
func names(t *testing.T, body map[string]any) []string {
	t.Helper()

	items, ok := body["items"].([]any)
	require.True(t, ok, "expected items array")

	out := make([]string, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		require.True(t, ok)
		out = append(out, m["name"].(string))
	}
	return out
}
