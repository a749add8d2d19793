package vault

import (
	"context"
	"time"

	"filevault/internal/core/domain"
)

// DownloadGrant issues a time-bounded read grant for one object of the
// caller's session. keySuffix is the derived token returned by upload and
// list, never the original filename.
func (s *vaultService) DownloadGrant(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) (*domain.AccessGrant, error) {
	if err := authorize(claimedSessionID, callerSessionID); err != nil {
		return nil, err
	}
	if err := domain.ValidateKeySuffix(keySuffix); err != nil {
		return nil, err
	}

	key := domain.SessionPrefix(callerSessionID) + keySuffix

	presignCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreOpTimeout)
	defer cancel()

	url, expiresAt, err := s.storage.GeneratePresignedURLForDownload(presignCtx, key)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Timestamp:        time.Now().UTC(),
		SessionID:        callerSessionID,
		OriginalFilename: keySuffix,
		StorageKey:       key,
		ClientIP:         origin.ClientIP,
		UserAgent:        origin.UserAgent,
		Kind:             domain.EventKindDownload,
	})

	return &domain.AccessGrant{
		URL:       url,
		Key:       key,
		Operation: domain.GrantRead,
		ExpiresAt: expiresAt,
	}, nil
}
