package domain

import "time"

// GrantOperation is the operation a presigned URL allows
type GrantOperation string

const (
	GrantRead  GrantOperation = "read"
	GrantWrite GrantOperation = "write"
)

// StoredObject represents a durable object in the store
type StoredObject struct {
	Key              string
	OriginalFilename string
	SessionID        string
	ContentType      string
	SizeBytes        int64
	UploadedAt       time.Time
	Encrypted        bool
}

// ObjectInfo is one entry of a prefix listing as reported by the store
type ObjectInfo struct {
	Key          string
	SizeBytes    int64
	LastModified time.Time
}

// ObjectSummary is one session-scoped object plus a fresh read grant.
// Key is the derived key suffix, the lookup token for download and delete.
type ObjectSummary struct {
	Key          string
	SizeBytes    int64
	LastModified time.Time
	DownloadURL  string
}

// AccessGrant is a time-bounded capability URL for one object
type AccessGrant struct {
	URL       string
	Key       string
	Headers   map[string]string
	Operation GrantOperation
	ExpiresAt time.Time
}

// FileUpload is one file of an upload batch. Data may be nil when the
// declared size already violates the per-file limit.
type FileUpload struct {
	Filename    string
	ContentType string
	SizeBytes   int64
	Data        []byte
}

// RequestOrigin identifies the caller for audit purposes
type RequestOrigin struct {
	ClientIP  string
	UserAgent string
}

// UploadOutcome is the per-file result of a batch upload. Err is set for
// failed files; the remaining fields are set for stored ones.
type UploadOutcome struct {
	OriginalName string
	Key          string
	Location     string
	SizeBytes    int64
	ContentType  string
	UploadedAt   time.Time
	DownloadURL  string
	Err          error
}

// Failed reports whether the file was rejected or lost
func (o UploadOutcome) Failed() bool {
	return o.Err != nil
}

// BatchSummary aggregates per-file outcomes
type BatchSummary struct {
	Total      int
	Successful int
	Failed     int
}

// BatchResult is the result of one upload batch. Batch success is never
// all-or-nothing; callers must inspect the per-file outcomes.
type BatchResult struct {
	SessionID string
	Outcomes  []UploadOutcome
	Summary   BatchSummary
}
