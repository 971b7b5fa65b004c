package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/domain/entity"
	"salon-booking/pkg/jwt"
)

var (
	ErrUnauthenticated = errors.New("user not found in context")
	ErrForbidden       = errors.New("operation not permitted for this user")
)

// currentIdentity returns the caller attached by the auth middleware.
func currentIdentity(ctx context.Context) (jwt.Identity, error) {
	identity, ok := jwt.IdentityFromContext(ctx)
	if !ok || identity.UserID == "" {
		return jwt.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}

// viewerRole is the role used to pick which actions a view exposes.
// Anonymous viewers get none.
func viewerRole(ctx context.Context) entity.Role {
	identity, ok := jwt.IdentityFromContext(ctx)
	if !ok {
		return ""
	}
	return entity.Role(identity.Role)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
