package auth

import (
	"context"
	"errors"
)

type contextKey string

const principalKey contextKey = "principal"

// ErrNoPrincipal is returned when no authenticated identity is on the context
var ErrNoPrincipal = errors.New("no authenticated principal in context")

// SetPrincipal attaches the authenticated identity to the request context
func SetPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom extracts the authenticated identity from the context
func PrincipalFrom(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(principalKey).(*Principal)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}
