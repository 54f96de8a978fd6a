package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/zaishu/zaishu-api/internal/api/shared"
	"github.com/zaishu/zaishu-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token of the request and stores the caller in
// the request context. A request without a valid token is answered with an auth
// error envelope and never reaches next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			shared.RespondWithError(w, r, shared.Auth(shared.CodeAuthMissing, "authorization required"))
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			shared.RespondWithError(w, r, shared.Auth(shared.CodeAuthInvalid, "invalid authorization format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, auth.ErrExpiredToken):
			shared.RespondWithError(w, r, shared.Auth(shared.CodeAuthExpired, "token expired"))
			return
		case errors.Is(err, auth.ErrInvalidToken):
			shared.RespondWithError(w, r, shared.Auth(shared.CodeAuthInvalid, "invalid token"))
			return
		default:
			shared.RespondWithError(w, r, err)
			return
		}

		ctx := shared.WithAuth(r.Context(), shared.AuthContext{CallerID: claims.UserID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCallerID extracts the authenticated caller from the request context.
// Returns the caller ID and a boolean indicating if it was found.
func GetCallerID(r *http.Request) (int64, bool) {
	ac, ok := shared.AuthFromContext(r.Context())
	return ac.CallerID, ok
}
