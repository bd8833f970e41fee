package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithOperatorID_And_OperatorIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithOperatorID(context.Background(), id)

	got, ok := OperatorIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestOperatorIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := OperatorIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestOperatorIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithOperatorID(context.Background(), uuid.Nil)

	if _, ok := OperatorIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
}

func TestOperatorIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), operatorIDKey, "not-a-uuid")

	if _, ok := OperatorIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestRunID(t *testing.T) {
	t.Parallel()

	if got := RunIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty run ID, got %q", got)
	}

	ctx := WithRunID(context.Background(), "run-42")
	if got := RunIDFromCtx(ctx); got != "run-42" {
		t.Fatalf("expected run-42, got %q", got)
	}
}
