package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithInvocationID_And_InvocationIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithInvocationID(context.Background(), "run-42")

	if got := InvocationIDFromCtx(ctx); got != "run-42" {
		t.Fatalf("expected run-42, got %q", got)
	}
}

func TestInvocationIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := InvocationIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestInvocationIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), invocationIDKey, 42)

	if got := InvocationIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}

func TestNewInvocation_GeneratesUUID(t *testing.T) {
	t.Parallel()

	a := InvocationIDFromCtx(NewInvocation(context.Background()))
	b := InvocationIDFromCtx(NewInvocation(context.Background()))

	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("invocation id %q is not a UUID: %v", a, err)
	}
	if a == b {
		t.Fatal("expected distinct invocation ids")
	}
}
