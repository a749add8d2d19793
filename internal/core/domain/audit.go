package domain

import "time"

// EventKind is the kind of an audit event
type EventKind string

const (
	EventKindUpload   EventKind = "file_upload"
	EventKindDownload EventKind = "file_download"
	EventKindDelete   EventKind = "file_delete"
)

// AuditEvent is one append-only record of a per-session operation
type AuditEvent struct {
	Timestamp        time.Time `json:"timestamp"`
	SessionID        string    `json:"sessionId"`
	OriginalFilename string    `json:"originalFilename"`
	StorageKey       string    `json:"s3Key"`
	ClientIP         string    `json:"clientIP"`
	UserAgent        string    `json:"userAgent"`
	Kind             EventKind `json:"event"`
}
