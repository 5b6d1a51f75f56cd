package infrastructure

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const runIDContextKey contextKey = "run_id"

// WithRunID stamps the context with a fresh run identifier. Every log
// record emitted under this context carries the ID, which ties the
// report files to the log lines that produced them.
func WithRunID(ctx context.Context) (context.Context, string) {
	runID := uuid.NewString()
	return context.WithValue(ctx, runIDContextKey, runID), runID
}

// RunIDFromContext retrieves the run ID, or "" when none is set.
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDContextKey).(string); ok {
		return runID
	}
	return ""
}
