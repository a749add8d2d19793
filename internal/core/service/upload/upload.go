package upload

import (
	"strconv"
	"time"

	"filevault/internal/config"
	"filevault/internal/core/port"
)

type uploadService struct {
	storage port.ObjectStorage
	audit   port.AuditRecorder
	cfg     config.UploadConfig
}

// NewUploadService creates a new upload service
func NewUploadService(storage port.ObjectStorage, audit port.AuditRecorder, cfg config.UploadConfig) port.UploadService {
	return &uploadService{storage: storage, audit: audit, cfg: cfg}
}

func uploadMetadata(sessionID, filename string, sizeBytes int64, contentType string, timestamp time.Time) map[string]string {
	return map[string]string{
		"original-filename": filename,
		"session-id":        sessionID,
		"upload-timestamp":  strconv.FormatInt(timestamp.UnixMilli(), 10),
		"file-size":         strconv.FormatInt(sizeBytes, 10),
		"content-type":      contentType,
	}
}

func uploadTags(sessionID string, timestamp time.Time) map[string]string {
	return map[string]string{
		"SessionId":  sessionID,
		"UploadDate": timestamp.Format("2006-01-02"),
	}
}
