package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const invocationIDKey ctxKey = "invocation_id"

// WithInvocationID stores the id of the current command invocation in the
// context so log records from one run can be correlated.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey, id)
}

// NewInvocation returns a context carrying a freshly generated invocation id.
func NewInvocation(ctx context.Context) context.Context {
	return WithInvocationID(ctx, uuid.NewString())
}

// InvocationIDFromCtx extracts the invocation id from the context.
// Returns an empty string if absent.
func InvocationIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey).(string)
	return id
}
