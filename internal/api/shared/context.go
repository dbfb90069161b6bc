package shared

import "context"

// contextKey is a private type for request context keys to avoid
// collisions with keys from other packages.
type contextKey string

// UsernameContextKey is the context key under which the authentication
// middleware stores the authenticated username.
const UsernameContextKey contextKey = "auth_username"

// UsernameFromContext extracts the authenticated username placed in the
// context by the authentication middleware. Returns the username and a
// boolean indicating whether it was present.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameContextKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// WithUsername returns a copy of ctx carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameContextKey, username)
}
