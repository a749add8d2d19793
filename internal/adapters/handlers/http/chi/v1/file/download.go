package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1DownloadResponse carries a time-bounded read grant
type V1DownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// DownloadV1 issues a read grant for one object of the caller's session.
// The key path segment is the derived token from upload/list responses.
func (h *HandlerV1) DownloadV1(w http.ResponseWriter, r *http.Request) {
	caller, ok := sessionstore.FromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	claimed := chi.URLParam(r, "sessionID")
	key := chi.URLParam(r, "key")
	if claimed == "" || key == "" {
		http.Error(w, "missing session id or key", http.StatusBadRequest)
		return
	}

	grant, err := h.vaultService.DownloadGrant(r.Context(), claimed, caller, key, requestOrigin(r))
	switch {
	case errors.Is(err, domain.ErrSessionMismatch):
		http.Error(w, "unauthorized access to session", http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrInvalidObjectKey):
		http.Error(w, "invalid object key", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrObjectNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error generating download url", "error", err)
		http.Error(w, "download failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1DownloadResponse{DownloadURL: grant.URL}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
