package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nugomed/nugomed-api/internal/api/shared"
	"github.com/nugomed/nugomed-api/internal/redact"
	"github.com/nugomed/nugomed-api/internal/service/auth"
)

// AuthMiddleware resolves the current user from the bearer token on each
// protected request. Authentication runs before any handler logic, so no
// database mutation can happen for an unauthenticated request.
type AuthMiddleware struct {
	authenticator *auth.Authenticator
}

// NewAuthMiddleware creates an AuthMiddleware with the given authenticator.
func NewAuthMiddleware(authenticator *auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate validates the Authorization header, resolves the token's
// subject to a user record, and stores the user in the request context.
// Every rejection carries WWW-Authenticate: Bearer and a uniform 401; the
// cause (missing header, bad signature, expiry, deleted user) is only
// logged, never exposed.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, r, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w, r, "Not authenticated")
			return
		}

		user, err := m.authenticator.ResolveUser(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken):
				unauthorized(w, r, "Could not validate credentials")
			default:
				slog.Error("failed to resolve current user",
					"error", redact.Error(err))
				shared.RespondWithError(w, r,
					http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithCurrentUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	shared.RespondWithError(w, r, http.StatusUnauthorized, detail)
}
