package vault_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"filevault/internal/adapters/storage"
	"filevault/internal/core/domain"
	"filevault/internal/core/service/audit"
	"filevault/internal/core/service/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVaultService_DownloadGrant_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStorage := storage.NewMockStorage()
	mockRecorder := audit.NewMockRecorder()
	vaultService := vault.NewVaultService(mockStorage, mockRecorder, defaultCfg)

	sessionID := "session-1"
	keySuffix := "a1b2c3.pdf"
	fullKey := domain.SessionPrefix(sessionID) + keySuffix
	origin := domain.RequestOrigin{ClientIP: "203.0.113.7", UserAgent: "curl/8.0"}
	expiry := time.Now().Add(time.Hour)

	mockStorage.
		On("GeneratePresignedURLForDownload", mock.Anything, fullKey).
		Return("https://minio.example.com/signed", expiry, nil)
	mockRecorder.
		On("Record", mock.MatchedBy(func(event domain.AuditEvent) bool {
			return event.Kind == domain.EventKindDownload &&
				event.SessionID == sessionID &&
				event.StorageKey == fullKey &&
				event.ClientIP == origin.ClientIP
		}))

	// Act
	grant, err := vaultService.DownloadGrant(ctx, sessionID, sessionID, keySuffix, origin)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, "https://minio.example.com/signed", grant.URL)
	assert.Equal(t, fullKey, grant.Key)
	assert.Equal(t, domain.GrantRead, grant.Operation)
	assert.Equal(t, expiry, grant.ExpiresAt)
	mockStorage.AssertExpectations(t)
	mockRecorder.AssertExpectations(t)
}

func TestVaultService_DownloadGrant_SessionMismatch(t *testing.T) {
	// Arrange
	mockStorage := storage.NewMockStorage()
	mockRecorder := audit.NewMockRecorder()
	vaultService := vault.NewVaultService(mockStorage, mockRecorder, defaultCfg)

	// Act
	grant, err := vaultService.DownloadGrant(context.Background(), "session-b", "session-a", "a1b2c3.pdf", domain.RequestOrigin{})

	// Assert
	assert.ErrorIs(t, err, domain.ErrSessionMismatch)
	assert.Nil(t, grant)
	mockStorage.AssertNotCalled(t, "GeneratePresignedURLForDownload", mock.Anything, mock.Anything)
	mockRecorder.AssertNotCalled(t, "Record", mock.Anything)
}

func TestVaultService_DownloadGrant_InvalidKey(t *testing.T) {
	// Arrange
	vaultService := vault.NewVaultService(storage.NewMockStorage(), audit.NewMockRecorder(), defaultCfg)

	for _, keySuffix := range []string{"", "../other", "foo/bar"} {
		// Act
		grant, err := vaultService.DownloadGrant(context.Background(), "session-1", "session-1", keySuffix, domain.RequestOrigin{})

		// Assert
		assert.ErrorIs(t, err, domain.ErrInvalidObjectKey)
		assert.Nil(t, grant)
	}
}

func TestVaultService_DownloadGrant_StorageFails(t *testing.T) {
	// Arrange
	mockStorage := storage.NewMockStorage()
	mockRecorder := audit.NewMockRecorder()
	vaultService := vault.NewVaultService(mockStorage, mockRecorder, defaultCfg)

	presignErr := errors.New("presign failed")
	mockStorage.
		On("GeneratePresignedURLForDownload", mock.Anything, mock.Anything).
		Return("", time.Time{}, presignErr)

	// Act
	grant, err := vaultService.DownloadGrant(context.Background(), "session-1", "session-1", "a1b2c3.pdf", domain.RequestOrigin{})

	// Assert
	assert.ErrorIs(t, err, presignErr)
	assert.Nil(t, grant)
	mockRecorder.AssertNotCalled(t, "Record", mock.Anything)
}
