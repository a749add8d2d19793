package file

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"filevault/internal/adapters/sessionstore"
	"filevault/internal/core/domain"
)

// V1UploadResult is the per-file outcome of a batch upload. Failed files
// carry error/details; stored files carry the derived key and a read URL.
type V1UploadResult struct {
	OriginalName string     `json:"originalName"`
	S3Key        string     `json:"s3Key,omitempty"`
	Location     string     `json:"location,omitempty"`
	Size         int64      `json:"size,omitempty"`
	ContentType  string     `json:"contentType,omitempty"`
	UploadedAt   *time.Time `json:"uploadedAt,omitempty"`
	DownloadURL  string     `json:"downloadUrl,omitempty"`
	Error        string     `json:"error,omitempty"`
	Details      string     `json:"details,omitempty"`
}

// V1BatchSummary aggregates per-file outcomes
type V1BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// V1UploadBatchResponse is the response to a batch upload
type V1UploadBatchResponse struct {
	SessionID     string           `json:"sessionId"`
	UploadResults []V1UploadResult `json:"uploadResults"`
	Summary       V1BatchSummary   `json:"summary"`
}

// UploadBatchV1 accepts a multipart batch under the `files` field and
// stores each file to the caller's own session namespace
func (h *HandlerV1) UploadBatchV1(w http.ResponseWriter, r *http.Request) {
	caller, ok := sessionstore.FromContext(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.cfg.MultipartMemory); err != nil {
		h.logger.Error("error parsing multipart request", "error", err)
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		http.Error(w, "no files provided", http.StatusBadRequest)
		return
	}

	files := make([]domain.FileUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f := domain.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   fh.Size,
		}

		// oversize bodies are never read; the declared size alone makes
		// the orchestrator reject the file
		if fh.Size <= h.cfg.MaxFileSize {
			src, err := fh.Open()
			if err != nil {
				h.logger.Error("error opening uploaded file", "filename", fh.Filename, "error", err)
				http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				h.logger.Error("error reading uploaded file", "filename", fh.Filename, "error", err)
				http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
				return
			}
			f.Data = data
		}

		files = append(files, f)
	}

	result, err := h.uploadService.UploadBatch(r.Context(), caller, requestOrigin(r), files)
	switch {
	case errors.Is(err, domain.ErrEmptyBatch), errors.Is(err, domain.ErrTooManyFiles):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error uploading batch", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := V1UploadBatchResponse{
		SessionID:     result.SessionID,
		UploadResults: make([]V1UploadResult, 0, len(result.Outcomes)),
		Summary: V1BatchSummary{
			Total:      result.Summary.Total,
			Successful: result.Summary.Successful,
			Failed:     result.Summary.Failed,
		},
	}
	for _, outcome := range result.Outcomes {
		resp.UploadResults = append(resp.UploadResults, toV1UploadResult(outcome))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func toV1UploadResult(outcome domain.UploadOutcome) V1UploadResult {
	if outcome.Failed() {
		result := V1UploadResult{
			OriginalName: outcome.OriginalName,
			Error:        "upload failed",
			Details:      outcome.Err.Error(),
		}
		if errors.Is(outcome.Err, domain.ErrFileSizeTooBig) {
			result.Error = "file too large"
		}
		return result
	}

	uploadedAt := outcome.UploadedAt
	return V1UploadResult{
		OriginalName: outcome.OriginalName,
		S3Key:        outcome.Key,
		Location:     outcome.Location,
		Size:         outcome.SizeBytes,
		ContentType:  outcome.ContentType,
		UploadedAt:   &uploadedAt,
		DownloadURL:  outcome.DownloadURL,
	}
}
