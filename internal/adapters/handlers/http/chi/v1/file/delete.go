package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1DeleteResponse acknowledges a deletion
type V1DeleteResponse struct {
	Message string `json:"message"`
}

// DeleteFileV1 removes one object of the caller's session. A foreign
// session gets 403 regardless of whether the key exists.
func (h *HandlerV1) DeleteFileV1(w http.ResponseWriter, r *http.Request) {
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

	err := h.vaultService.DeleteObject(r.Context(), claimed, caller, key, requestOrigin(r))
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
		h.logger.Error("error deleting file", "error", err)
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(V1DeleteResponse{Message: "File deleted successfully"}); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
