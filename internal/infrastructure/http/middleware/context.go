package middleware

import (
	"context"

	"github.com/ufernand853/seguros-main-sub000/internal/application/ports"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// WithClaims injects verified access-token claims into the context.
func WithClaims(ctx context.Context, claims *ports.AccessClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims set by the request guard, or nil.
func ClaimsFromContext(ctx context.Context) *ports.AccessClaims {
	v := ctx.Value(claimsContextKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*ports.AccessClaims)
	return c
}
