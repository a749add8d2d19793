package port

import "context"

// SessionStore is an interface to define session store interactions.
// Sessions are opaque identifiers with a sliding expiry; the core only
// consumes them as authorization tokens and storage namespace prefixes.
type SessionStore interface {
	Create(ctx context.Context) (string, error)
	Validate(ctx context.Context, sessionID string) (bool, error)
	Touch(ctx context.Context, sessionID string) error
}
