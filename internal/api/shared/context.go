package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/nugomed/nugomed-api/internal/domain"
)

// ContextKey is the key type for request context values.
type ContextKey string

const (
	// CurrentUserContextKey is the context key for the resolved current user.
	CurrentUserContextKey ContextKey = "currentUser"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a freshly generated trace ID to the context, used to
// correlate logs and error responses for one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithCurrentUser returns a context carrying the resolved current user.
func WithCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, CurrentUserContextKey, user)
}

// CurrentUser extracts the resolved current user from the context.
// The boolean reports whether a user was attached.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(CurrentUserContextKey).(*domain.User)
	return user, ok
}

func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is extraordinary. Log it and carry on with
		// an empty ID rather than refusing the request.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
