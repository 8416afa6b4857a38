package logger

import "context"

// Context keys for storing values
type contextKey string

const (
	// ContextKeyRequestID is the context key for request ID
	ContextKeyRequestID contextKey = "request_id"
	// ContextKeyUsername is the context key for the acting username
	ContextKeyUsername contextKey = "username"
)

// WithRequestIDContext adds request ID to context
func WithRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// WithUsernameContext adds the acting username to context
func WithUsernameContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, ContextKeyUsername, username)
}

// GetRequestID gets request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}
