package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1FileEntry is one listed object. Key is the lookup token the download
// and delete endpoints accept.
type V1FileEntry struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	DownloadURL  string    `json:"downloadUrl"`
}

// V1ListFilesResponse is the response to a session file listing
type V1ListFilesResponse struct {
	SessionID string        `json:"sessionId"`
	Files     []V1FileEntry `json:"files"`
	Count     int           `json:"count"`
}

// ListFilesV1 lists the objects of one session; callers may only list
// their own
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	caller, ok := sessionstore.FromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	claimed := chi.URLParam(r, "sessionID")
	if claimed == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	summaries, err := h.vaultService.ListObjects(r.Context(), claimed, caller)
	switch {
	case errors.Is(err, domain.ErrSessionMismatch):
		http.Error(w, "unauthorized access to session", http.StatusForbidden)
		return
	case err != nil:
		h.logger.Error("error listing files", "error", err)
		http.Error(w, "failed to list files", http.StatusInternalServerError)
		return
	}

	resp := V1ListFilesResponse{
		SessionID: claimed,
		Files:     make([]V1FileEntry, 0, len(summaries)),
		Count:     len(summaries),
	}
	for _, summary := range summaries {
		resp.Files = append(resp.Files, V1FileEntry{
			Key:          summary.Key,
			Size:         summary.SizeBytes,
			LastModified: summary.LastModified,
			DownloadURL:  summary.DownloadURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
