package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/andrejsm/taskkeeper/internal/server/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the authenticated identity the auth gate
// attached to the request context.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

// authenticate guards a protected route. It requires a Bearer token,
// verifies the signature, then re-resolves the subject against the user
// store so that a token issued before the account was deleted stops
// working immediately. On failure the request never reaches next.
func (s *Server) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			s.writeJSON(w, http.StatusUnauthorized, "Access denied. No token provided.", nil)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		identity, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.writeJSON(w, http.StatusForbidden, "Invalid or expired token.", nil)
			return
		}

		if _, err := s.users.FindActive(r.Context(), identity.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.writeJSON(w, http.StatusUnauthorized, "Invalid token or user not found.", nil)
				return
			}
			s.writeError(r, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
