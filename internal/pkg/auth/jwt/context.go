package jwt

import (
	"context"
	"net/http"
)

// Context key for the authenticated principal name, preventing collisions
// with other packages.
type contextKey string

const contextPrincipalKey contextKey = "auth_principal"

// WithPrincipal returns a context carrying the authenticated principal's name.
func WithPrincipal(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextPrincipalKey, name)
}

// PrincipalFromContext extracts the authenticated principal's name from the
// request context. An empty string means the request is unauthenticated.
func PrincipalFromContext(r *http.Request) string {
	name, ok := r.Context().Value(contextPrincipalKey).(string)
	if !ok {
		return ""
	}

	return name
}
