package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/utils"
)

type contextKey string

const ContextKeyPrincipal contextKey = "principal"

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth enforces a valid Bearer token and injects the authenticated
// principal into the request context. Failures answer 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.principalFromHeader(r)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

// OptionalAuth resolves a principal when a valid token is present and leaves
// the request anonymous otherwise. Public read paths use this so the same
// handler can serve both views.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.principalFromHeader(r)
		if err != nil {
			principal = domain.Anonymous()
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

func (m *AuthMiddleware) principalFromHeader(r *http.Request) (domain.Principal, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	claims, err := utils.ValidateToken(parts[1], m.jwtSecret)
	if err != nil {
		return domain.Anonymous(), domain.ErrUnauthenticated
	}

	return domain.Principal{
		ID:            claims.UserID,
		Name:          claims.Name,
		Admin:         claims.Admin,
		Premium:       claims.Premium,
		Authenticated: true,
	}, nil
}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// PrincipalFrom extracts the request principal; absent means anonymous.
func PrincipalFrom(ctx context.Context) domain.Principal {
	if p, ok := ctx.Value(ContextKeyPrincipal).(domain.Principal); ok {
		return p
	}
	return domain.Anonymous()
}
