// ABOUTME: HTTP middleware for JWT authentication on gateway endpoints
// ABOUTME: Extracts the bearer token from the Authorization header and adds the identity to context

package auth

import (
	"net/http"
	"strings"
)

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// Middleware creates an HTTP middleware that extracts and validates JWT tokens.
// On success the resolved Identity is attached to the request context; on any
// failure the handler never runs and the caller receives the invalid-token
// response. Every rejection collapses to the same external error so the
// boundary does not reveal whether the header was absent, malformed, forged
// or expired.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				rejectInvalidToken(w)
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				rejectInvalidToken(w)
				return
			}

			id := &Identity{Username: subject}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// rejectInvalidToken writes the uniform rejection for unauthenticated requests.
func rejectInvalidToken(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"Invalid token"}`))
}
