package port

import (
	"context"

	"filevault/internal/core/domain"
)

// UploadService is an interface to define the upload orchestrator.
// Both operations scope writes to the caller's own session; a
// client-supplied session id is never accepted on the write path.
type UploadService interface {
	UploadBatch(ctx context.Context, sessionID string, origin domain.RequestOrigin, files []domain.FileUpload) (*domain.BatchResult, error)
	RequestDirectUpload(ctx context.Context, sessionID string, filename string, contentType string) (*domain.AccessGrant, error)
}

// VaultService is an interface to define session-scoped retrieval and
// lifecycle operations. Every operation authorizes the claimed session
// against the caller's before touching storage.
type VaultService interface {
	ListObjects(ctx context.Context, claimedSessionID, callerSessionID string) ([]domain.ObjectSummary, error)
	DownloadGrant(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) (*domain.AccessGrant, error)
	DeleteObject(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) error
}
