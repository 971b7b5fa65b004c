package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name     string
		claims   jwt.MapClaims
		wantID   string
		wantRole string
		wantErr  error
	}{
		{
			name:     "id claim",
			claims:   jwt.MapClaims{"id": "u1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()},
			wantID:   "u1",
			wantRole: "admin",
		},
		{
			name:     "underscore id without expiry",
			claims:   jwt.MapClaims{"_id": "u2", "role": "staff"},
			wantID:   "u2",
			wantRole: "staff",
		},
		{
			name:   "sub fallback",
			claims: jwt.MapClaims{"sub": "u3"},
			wantID: "u3",
		},
		{
			name:    "expired",
			claims:  jwt.MapClaims{"id": "u1", "exp": time.Now().Add(-time.Minute).Unix()},
			wantErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := inspector.Inspect(signed(t, tt.claims))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.UserID)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestInspect_Malformed(t *testing.T) {
	_, err := NewInspector().Inspect("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{Token: "t", UserID: "u1", Role: "customer"})
	identity, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", identity.UserID)
}
