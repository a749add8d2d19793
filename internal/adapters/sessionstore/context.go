package sessionstore

import "context"

type sessionContextKey struct{}

// WithSession attaches the caller's authenticated session identifier
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionID)
}

// FromContext returns the caller's authenticated session identifier
func FromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionContextKey{}).(string)
	return sessionID, ok && sessionID != ""
}
