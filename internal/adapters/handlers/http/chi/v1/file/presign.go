package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/core/domain"
)

// V1PresignedUploadRequest asks for a client-direct upload grant
type V1PresignedUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// V1PresignedUploadResponse carries the write grant. ExpiresIn is fixed
// at issuance and never extended.
type V1PresignedUploadResponse struct {
	UploadURL string            `json:"uploadUrl"`
	S3Key     string            `json:"s3Key"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresIn int               `json:"expiresIn"`
}

// PresignedUploadV1 issues a presigned PUT URL scoped to the caller's
// own session, letting large files bypass the server body path
func (h *HandlerV1) PresignedUploadV1(w http.ResponseWriter, r *http.Request) {
	caller, ok := sessionstore.FromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	var req V1PresignedUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding presigned url request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Filename == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	grant, err := h.uploadService.RequestDirectUpload(r.Context(), caller, req.Filename, req.ContentType)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error generating upload url", "error", err)
		http.Error(w, "failed to generate upload URL", http.StatusInternalServerError)
		return
	}

	resp := V1PresignedUploadResponse{
		UploadURL: grant.URL,
		S3Key:     grant.Key,
		Headers:   grant.Headers,
		ExpiresIn: int(time.Until(grant.ExpiresAt).Round(time.Second).Seconds()),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
