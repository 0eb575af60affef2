// Package middleware provides the bearer-token authentication layer
// shared by the protected API routes.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenVerifier resolves a bearer token to the account it was issued
// for. The server's JWT service implements it.
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

// contextKey is unexported so no other package can collide with the
// user ID entry on a request context.
type contextKey struct{}

// RequireUser wraps a handler so it only runs for requests carrying a
// valid bearer token. The resolved user ID is placed on the request
// context for UserID to read.
func RequireUser(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// BearerToken extracts the token from the Authorization header. The
// scheme is matched case-insensitively; a missing header, a different
// scheme or an empty token all report false.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the authenticated user ID stored by RequireUser.
func UserID(r *http.Request) (uuid.UUID, error) {
	userID, ok := r.Context().Value(contextKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("no authenticated user on request")
	}
	return userID, nil
}

// unauthorized writes the API's standard error envelope.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
