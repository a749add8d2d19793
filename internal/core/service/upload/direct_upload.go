package upload

import (
	"context"
	"time"

	"filevault/internal/core/domain"
)

// RequestDirectUpload issues a presigned PUT grant so large files bypass
// the server body path. The key is derived here; the client never picks it.
func (s *uploadService) RequestDirectUpload(ctx context.Context, sessionID string, filename string, contentType string) (*domain.AccessGrant, error) {
	if filename == "" {
		return nil, domain.ErrMissingField
	}

	salt, err := domain.NewSalt()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	key := domain.DeriveStorageKey(sessionID, filename, now, salt)

	presignCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreOpTimeout)
	defer cancel()

	url, headers, expiresAt, err := s.storage.GeneratePresignedURLForUpload(presignCtx, key, contentType, uploadMetadata(sessionID, filename, 0, contentType, now))
	if err != nil {
		return nil, err
	}

	return &domain.AccessGrant{
		URL:       url,
		Key:       key,
		Headers:   headers,
		Operation: domain.GrantWrite,
		ExpiresAt: expiresAt,
	}, nil
}
