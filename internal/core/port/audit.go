package port

import (
	"context"

	"filevault/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking or failing the
// triggering operation. Recording errors never reach the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository is an interface to define audit event persistence.
// The log is append-only; there is no update or delete.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.AuditEvent, error)
}

// EventPublisher broadcasts audit events to an operational channel
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AuditEvent) error
}
