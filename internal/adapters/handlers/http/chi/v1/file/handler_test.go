package file_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"filevault/internal/adapters/handlers/http/chi"
	"filevault/internal/adapters/handlers/http/chi/v1/file"
	"filevault/internal/adapters/handlers/http/chi/v1/session"
	"filevault/internal/adapters/sessionstore"
	"filevault/internal/config"
	"filevault/internal/core/service/upload"
	"filevault/internal/core/service/vault"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var testCfg = &config.Config{
	Upload: config.UploadConfig{
		MaxBatchFiles:   3,
		MaxFileSize:     1024,
		StoreOpTimeout:  5 * time.Second,
		MultipartMemory: 32 << 20,
	},
	Session: config.SessionConfig{
		TTL:        time.Hour,
		CookieName: "upload_session",
	},
}

func newTestRouter(uploadService *upload.MockUploadService, vaultService *vault.MockVaultService, store *sessionstore.MockStore) http.Handler {
	sessionHandler := session.NewSessionHandlerV1(discardLogger)
	fileHandler := file.NewFileHandlerV1(uploadService, vaultService, testCfg.Upload, discardLogger)
	return chi.NewRouter(discardLogger, store, sessionHandler, fileHandler, testCfg)
}

// newSessionStore returns a store that accepts sessionID as a valid,
// already-established session
func newSessionStore(sessionID string) *sessionstore.MockStore {
	store := sessionstore.NewMockStore()
	store.On("Validate", mock.Anything, sessionID).Return(true, nil)
	store.On("Touch", mock.Anything, sessionID).Return(nil)
	return store
}

func withSessionCookie(req *http.Request, sessionID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCfg.Session.CookieName, Value: sessionID})
	return req
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, data := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
