package vault

import (
	"filevault/internal/config"
	"filevault/internal/core/domain"
	"filevault/internal/core/port"
)

type vaultService struct {
	storage port.ObjectStorage
	audit   port.AuditRecorder
	cfg     config.UploadConfig
}

// NewVaultService creates a new session-scoped retrieval and lifecycle service
func NewVaultService(storage port.ObjectStorage, audit port.AuditRecorder, cfg config.UploadConfig) port.VaultService {
	return &vaultService{storage: storage, audit: audit, cfg: cfg}
}

// authorize is the sole access-control boundary: the claimed session must
// exactly equal the caller's authenticated one.
func authorize(claimedSessionID, callerSessionID string) error {
	if callerSessionID == "" || claimedSessionID != callerSessionID {
		return domain.ErrSessionMismatch
	}
	return nil
}
