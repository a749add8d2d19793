package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"filevault/internal/config"
	"filevault/internal/core/domain"
	"filevault/internal/core/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/encrypt"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// PutObject stores one object with server-side encryption at rest, its
// metadata and its queryable tags
func (a *Adapter) PutObject(ctx context.Context, in port.PutObjectInput) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType:          in.ContentType,
		UserMetadata:         in.Metadata,
		UserTags:             in.Tags,
		ServerSideEncryption: encrypt.NewSSE(),
		StorageClass:         a.config.StorageClass,
	}

	info, err := a.client.PutObject(ctx, a.config.BucketName, in.Key, bytes.NewReader(in.Data), int64(len(in.Data)), opts)
	if err != nil {
		return "", fmt.Errorf("%w: put %q: %v", domain.ErrStorageFailure, in.Key, err)
	}

	return info.Location, nil
}

// GeneratePresignedURLForDownload generates a presigned URL for downloading a file.
// Expiry is fixed at issuance; the store rejects the URL afterwards.
func (a *Adapter) GeneratePresignedURLForDownload(ctx context.Context, fileKey string) (string, time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, fileKey, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: presign get %q: %v", domain.ErrStorageFailure, fileKey, err)
	}

	expiresAt := time.Now().Add(a.config.DownloadSignedURLDuration)

	return presignedURL.String(), expiresAt, nil
}

// GeneratePresignedURLForUpload generates a presigned PUT URL for a
// client-direct upload, carrying the same metadata and encryption headers
// a server-side put would set
func (a *Adapter) GeneratePresignedURLForUpload(ctx context.Context, fileKey string, contentType string, metadata map[string]string) (string, map[string]string, time.Time, error) {
	requestHeaders := make(http.Header)
	requestHeaders.Set("Content-Type", contentType)
	requestHeaders.Set("x-amz-server-side-encryption", "AES256")
	for key, value := range metadata {
		requestHeaders.Set("x-amz-meta-"+key, value)
	}

	presignedURL, err := a.client.PresignHeader(ctx, http.MethodPut, a.config.BucketName, fileKey, a.config.UploadPresignedDuration, nil, requestHeaders)
	if err != nil {
		return "", nil, time.Time{}, fmt.Errorf("%w: presign put %q: %v", domain.ErrStorageFailure, fileKey, err)
	}

	expiresAt := time.Now().Add(a.config.UploadPresignedDuration)

	return presignedURL.String(), a.headerToMap(requestHeaders), expiresAt, nil
}

// ListObjects aggregates every object under prefix into one result; the
// client iterates store pages transparently
func (a *Adapter) ListObjects(ctx context.Context, prefix string) ([]domain.ObjectInfo, error) {
	objects := make([]domain.ObjectInfo, 0)

	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("%w: list %q: %v", domain.ErrStorageFailure, prefix, object.Err)
		}
		objects = append(objects, domain.ObjectInfo{
			Key:          object.Key,
			SizeBytes:    object.Size,
			LastModified: object.LastModified,
		})
	}

	return objects, nil
}

// DeleteObject deletes an object from storage. Removing an absent key is
// not an error unless the store reports one explicitly.
func (a *Adapter) DeleteObject(ctx context.Context, fileKey string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, fileKey, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return fmt.Errorf("%w: %s", domain.ErrObjectNotFound, fileKey)
		}
		return fmt.Errorf("%w: delete %q: %v", domain.ErrStorageFailure, fileKey, err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", fileKey),
		slog.String("bucket", a.config.BucketName))

	return nil
}

func (a *Adapter) headerToMap(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		if len(values) > 0 {
			result[key] = values[0]
		}
	}
	return result
}
