package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token has expired")
)

// Claims are the fields the web tier reads from a backend-issued token.
// Signatures are not checked here: the backend verifies every request it
// receives, and the web tier only uses claims to pick routes and views.
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt *time.Time
}

// userIDClaims lists the claim names backends use for the subject id.
var userIDClaims = []string{"id", "_id", "userId", "sub"}

type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewInspector() *Inspector {
	return &Inspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Inspect decodes tokenString without verifying its signature.
func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{}
	for _, name := range userIDClaims {
		if v, ok := mapClaims[name].(string); ok && v != "" {
			claims.UserID = v
			break
		}
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		expiresAt := exp.Time
		claims.ExpiresAt = &expiresAt
		if !i.now().Before(expiresAt) {
			return nil, ErrTokenExpired
		}
	}

	return claims, nil
}

type contextKey string

const identityKey contextKey = "identity"

// Identity is the caller of the current request.
type Identity struct {
	Token  string
	UserID string
	Role   string
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller, if the request carried a token.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
