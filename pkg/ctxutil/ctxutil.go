// Package ctxutil carries per-run values through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	operatorIDKey ctxKey = "operator_id"
	runIDKey      ctxKey = "run_id"
)

// WithOperatorID stores the ID of the user on whose behalf balance
// operations are recorded.
func WithOperatorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}

// OperatorIDFromCtx extracts the operator ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func OperatorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(operatorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRunID stores the run ID in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns an empty string if absent.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}
