package middleware

import (
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies at 1 MiB when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// MaxBytes caps the request body at limit bytes for methods that carry one;
// handlers reading past the cap get an error from the body and the client a
// 413. The limit comes from config (MAX_BODY_BYTES); values <= 0 fall back to
// DefaultMaxBodyBytes.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if r.Body != nil {
					r.Body = http.MaxBytesReader(w, r.Body, limit)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
