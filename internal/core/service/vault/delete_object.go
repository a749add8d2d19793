package vault

import (
	"context"
	"time"

	"filevault/internal/core/domain"
)

// DeleteObject removes one object of the caller's session. The session
// check runs before any storage access, so a foreign session learns
// nothing about key existence. Deleting an absent key is idempotent
// unless the store reports NotFound explicitly.
func (s *vaultService) DeleteObject(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) error {
	if err := authorize(claimedSessionID, callerSessionID); err != nil {
		return err
	}
	if err := domain.ValidateKeySuffix(keySuffix); err != nil {
		return err
	}

	key := domain.SessionPrefix(callerSessionID) + keySuffix

	deleteCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreOpTimeout)
	defer cancel()

	if err := s.storage.DeleteObject(deleteCtx, key); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Timestamp:        time.Now().UTC(),
		SessionID:        callerSessionID,
		OriginalFilename: keySuffix,
		StorageKey:       key,
		ClientIP:         origin.ClientIP,
		UserAgent:        origin.UserAgent,
		Kind:             domain.EventKindDelete,
	})

	return nil
}
