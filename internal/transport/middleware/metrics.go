package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/metrics"
)

// Metrics returns middleware that records Prometheus metrics per route pattern.
// It must wrap the ServeMux directly: the mux sets r.Pattern on the request
// it receives, and any r.WithContext in between hides it.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			path := routeOf(r)
			if path == "/metrics" {
				return
			}

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// routeOf returns the matched pattern without its method prefix,
// or "unmatched" so raw URLs never become label values.
func routeOf(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}
	return r.Pattern
}
