package backend

import "context"

type contextKey string

const tokenKey contextKey = "backend_token"

// WithToken attaches the caller's bearer token to ctx. Every backend call
// made with the returned context forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}
