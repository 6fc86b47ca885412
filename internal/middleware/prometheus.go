package middleware

import (
	"net/http"
	"time"

	"linkstash/internal/metrics"
)

// Prometheus records duration and count for each request, keyed by method,
// normalized path, and status. Scrape and probe endpoints are excluded so the
// series are not dominated by Prometheus itself.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrap := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrap, r)
		if r.URL.Path == "/metrics" || r.URL.Path == "/health" {
			return
		}
		metrics.RecordRequest(r.Method, r.URL.Path, wrap.status, time.Since(start).Seconds())
	})
}
