package port

import (
	"context"
	"time"

	"filevault/internal/core/domain"
)

// PutObjectInput carries one object write with its encryption-at-rest metadata
type PutObjectInput struct {
	Key         string
	Data        []byte
	ContentType string
	Metadata    map[string]string
	Tags        map[string]string
}

// ObjectStorage is an interface to define object store interactions.
// Every write must request server-side encryption at rest.
type ObjectStorage interface {
	PutObject(ctx context.Context, in PutObjectInput) (string, error)
	GeneratePresignedURLForDownload(ctx context.Context, fileKey string) (string, time.Time, error)
	GeneratePresignedURLForUpload(ctx context.Context, fileKey string, contentType string, metadata map[string]string) (string, map[string]string, time.Time, error)
	ListObjects(ctx context.Context, prefix string) ([]domain.ObjectInfo, error)
	DeleteObject(ctx context.Context, fileKey string) error
}
