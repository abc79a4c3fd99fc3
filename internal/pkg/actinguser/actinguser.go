// Package actinguser carries the identity of the user behind a request
// through context. The HTTP layer attaches it, commands read it for audit
// fields, and queue messages propagate it to workers so async processing
// keeps the original actor.
package actinguser

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

type contextKey struct{}

// WithUser returns a context carrying the acting user's identifier.
func WithUser(ctx context.Context, userID kernel.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserFrom extracts the acting user's identifier from the context. The second
// return value is false when the context carries no user.
func UserFrom(ctx context.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Value(contextKey{}).(kernel.UUID)
	return userID, ok
}
