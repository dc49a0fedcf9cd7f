// Package ctxutil carries request-scoped identifiers through context.
// The authentication layer (out of process here) is expected to attach
// the user id before any service call.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// WithUserID stores the authenticated user's id in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user id from the context.
// Returns uuid.Nil and false if the value is missing, nil, or mistyped.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
