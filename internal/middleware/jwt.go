package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"linkstash/internal/auth"
	"linkstash/internal/metrics"
)

type key string

const (
	identityKey key = "identity"

	// identityHolderKey carries a slot that RequestLog plants before this
	// middleware runs, so the access log can include who the request was.
	identityHolderKey key = "identity_holder"
)

// TokenValidator is the part of auth.TokenIssuer the middleware needs.
type TokenValidator interface {
	Validate(raw string) (string, error)
}

// JWT rejects any request without a valid bearer token before the handler
// (and therefore any database access) runs. On success the identity email
// from the token is stored in the request context.
func JWT(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing authorization header", "missing")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader || tokenStr == "" {
				unauthorized(w, "invalid authorization header", "malformed")
				return
			}

			email, err := validator.Validate(tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					unauthorized(w, "token expired", "expired")
				case errors.Is(err, auth.ErrTokenInvalid):
					unauthorized(w, "invalid token", "bad_signature")
				default:
					unauthorized(w, "invalid token", "malformed")
				}
				return
			}

			if h, ok := r.Context().Value(identityHolderKey).(*string); ok {
				*h = email
			}

			ctx := context.WithValue(r.Context(), identityKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the email the request's token was issued for.
func GetIdentity(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	return email, ok
}

// WithIdentity returns a context carrying the given identity email, as the
// JWT middleware would set it. Intended for handler tests.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey, email)
}

func unauthorized(w http.ResponseWriter, message, reason string) {
	metrics.IncAuthFailures(reason)
	jsonError(w, message, http.StatusUnauthorized)
}
