package postgres

import (
	"context"
	"database/sql"
	"time"

	"filevault/internal/core/domain"
	"filevault/internal/core/port"
)

// SQLQuerier is the subset of *sql.DB the repositories need
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlAuditEventRepository struct {
	db SQLQuerier
}

// NewSQLAuditEventRepository creates a new sqlAuditEventRepository
func NewSQLAuditEventRepository(db SQLQuerier) port.AuditRepository {
	return &sqlAuditEventRepository{db: db}
}

// Insert appends one audit event. There is no update or delete path.
func (r *sqlAuditEventRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	query := `
		INSERT INTO audit_event (
			occurred_at, session_id, original_filename, storage_key, client_ip, user_agent, kind
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(
		ctx,
		query,
		event.Timestamp,
		event.SessionID,
		event.OriginalFilename,
		event.StorageKey,
		event.ClientIP,
		event.UserAgent,
		event.Kind,
	)
	if err != nil {
		return err
	}
	return nil
}

// ListBySession returns the most recent events recorded for one session
func (r *sqlAuditEventRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.AuditEvent, error) {
	query := `
		SELECT occurred_at, session_id, original_filename, storage_key, client_ip, user_agent, kind
		FROM audit_event
		WHERE session_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var row dbAuditEvent
		if err := rows.Scan(
			&row.OccurredAt,
			&row.SessionID,
			&row.OriginalFilename,
			&row.StorageKey,
			&row.ClientIP,
			&row.UserAgent,
			&row.Kind,
		); err != nil {
			return nil, err
		}
		events = append(events, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

type dbAuditEvent struct {
	OccurredAt       time.Time `db:"occurred_at"`
	SessionID        string    `db:"session_id"`
	OriginalFilename string    `db:"original_filename"`
	StorageKey       string    `db:"storage_key"`
	ClientIP         string    `db:"client_ip"`
	UserAgent        string    `db:"user_agent"`
	Kind             string    `db:"kind"`
}

// ToDomain converts db obj to domain
func (e *dbAuditEvent) ToDomain() *domain.AuditEvent {
	return &domain.AuditEvent{
		Timestamp:        e.OccurredAt,
		SessionID:        e.SessionID,
		OriginalFilename: e.OriginalFilename,
		StorageKey:       e.StorageKey,
		ClientIP:         e.ClientIP,
		UserAgent:        e.UserAgent,
		Kind:             domain.EventKind(e.Kind),
	}
}
