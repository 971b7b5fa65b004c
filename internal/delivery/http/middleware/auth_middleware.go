package middleware

import (
	"errors"
	"net/http"
	"strings"

	"salon-booking/internal/infrastructure/backend"
	"salon-booking/pkg/jwt"
	"salon-booking/pkg/response"
)

type AuthMiddleware struct {
	inspector *jwt.Inspector
}

func NewAuthMiddleware(inspector *jwt.Inspector) *AuthMiddleware {
	return &AuthMiddleware{
		inspector: inspector,
	}
}

// Authenticate requires a bearer token. The token is forwarded unchanged to
// the salon backend, which remains the one that verifies it; here its claims
// only pick the caller's identity and role.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		claims, err := m.inspector.Inspect(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(w, "Token has expired")
				return
			}
			response.Unauthorized(w, "Invalid token")
			return
		}
		if claims.UserID == "" {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := backend.WithToken(r.Context(), tokenString)
		ctx = jwt.WithIdentity(ctx, jwt.Identity{
			Token:  tokenString,
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
