package core

import "context"

// Context keys for request-scoped options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	sessionIDKey      contextKey = "sessionID"
)

// withSuppressHeader sets whether headers should be suppressed in the context
func withSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withSessionID attaches the active session identifier to the context
func withSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// sessionIDFromContext returns the active session identifier from context
func sessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// WithSuppressedHeaders marks the context so runs skip the stdout banner.
// The MCP server uses this to keep protocol output clean.
func WithSuppressedHeaders(ctx context.Context) context.Context {
	return withSuppressHeader(ctx)
}
