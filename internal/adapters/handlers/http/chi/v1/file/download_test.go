package file_test

import (
	"encoding/json"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"filevault/internal/adapters/handlers/http/chi/v1/file"
	"filevault/internal/core/domain"
	"filevault/internal/core/service/upload"
	"filevault/internal/core/service/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDownloadV1_Success(t *testing.T) {
	// Arrange
	sessionID := "session-1"
	keySuffix := "a1b2c3.pdf"

	mockService := vault.NewMockVaultService()
	mockService.
		On("DownloadGrant", mock.Anything, sessionID, sessionID, keySuffix, mock.Anything).
		Return(&domain.AccessGrant{
			URL:       "https://minio.example.com/signed",
			Key:       domain.SessionPrefix(sessionID) + keySuffix,
			Operation: domain.GrantRead,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	h := newTestRouter(upload.NewMockUploadService(), mockService, newSessionStore(sessionID))
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http2.MethodGet, "/api/download/"+sessionID+"/"+keySuffix, nil)
	withSessionCookie(req, sessionID)

	// Act
	h.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http2.StatusOK, w.Code)
	mockService.AssertExpectations(t)

	var response file.V1DownloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "https://minio.example.com/signed", response.DownloadURL)
}

func TestDownloadV1_Errors(t *testing.T) {

	t.Run("foreign session", func(t *testing.T) {
		// Arrange
		mockService := vault.NewMockVaultService()
		mockService.
			On("DownloadGrant", mock.Anything, "session-b", "session-a", "a1b2c3.pdf", mock.Anything).
			Return((*domain.AccessGrant)(nil), domain.ErrSessionMismatch)

		h := newTestRouter(upload.NewMockUploadService(), mockService, newSessionStore("session-a"))
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/download/session-b/a1b2c3.pdf", nil)
		withSessionCookie(req, "session-a")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusForbidden, w.Code)
	})

	t.Run("invalid key", func(t *testing.T) {
		// Arrange
		sessionID := "session-1"
		mockService := vault.NewMockVaultService()
		mockService.
			On("DownloadGrant", mock.Anything, sessionID, sessionID, "..", mock.Anything).
			Return((*domain.AccessGrant)(nil), domain.ErrInvalidObjectKey)

		h := newTestRouter(upload.NewMockUploadService(), mockService, newSessionStore(sessionID))
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/download/"+sessionID+"/..", nil)
		withSessionCookie(req, sessionID)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		// Arrange
		sessionID := "session-1"
		mockService := vault.NewMockVaultService()
		mockService.
			On("DownloadGrant", mock.Anything, sessionID, sessionID, "missing.pdf", mock.Anything).
			Return((*domain.AccessGrant)(nil), domain.ErrObjectNotFound)

		h := newTestRouter(upload.NewMockUploadService(), mockService, newSessionStore(sessionID))
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http2.MethodGet, "/api/download/"+sessionID+"/missing.pdf", nil)
		withSessionCookie(req, sessionID)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusNotFound, w.Code)
	})
}
