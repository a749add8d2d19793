package upload

import (
	"context"
	"fmt"
	"time"

	"filevault/internal/core/domain"
	"filevault/internal/core/port"
)

// UploadBatch stores each file of the batch independently. A per-file
// failure never aborts the remaining files; the caller must inspect the
// per-file outcomes.
func (s *uploadService) UploadBatch(ctx context.Context, sessionID string, origin domain.RequestOrigin, files []domain.FileUpload) (*domain.BatchResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(files) > s.cfg.MaxBatchFiles {
		return nil, fmt.Errorf("%w: %d files, maximum is %d", domain.ErrTooManyFiles, len(files), s.cfg.MaxBatchFiles)
	}

	outcomes := make([]domain.UploadOutcome, 0, len(files))
	for _, f := range files {
		outcomes = append(outcomes, s.uploadOne(ctx, sessionID, origin, f))
	}

	summary := domain.BatchSummary{Total: len(files)}
	for _, outcome := range outcomes {
		if outcome.Failed() {
			summary.Failed++
		} else {
			summary.Successful++
		}
	}

	return &domain.BatchResult{
		SessionID: sessionID,
		Outcomes:  outcomes,
		Summary:   summary,
	}, nil
}

func (s *uploadService) uploadOne(ctx context.Context, sessionID string, origin domain.RequestOrigin, f domain.FileUpload) domain.UploadOutcome {
	outcome := domain.UploadOutcome{OriginalName: f.Filename}

	if f.SizeBytes > s.cfg.MaxFileSize {
		outcome.Err = fmt.Errorf("%w: %d bytes, maximum is %d", domain.ErrFileSizeTooBig, f.SizeBytes, s.cfg.MaxFileSize)
		return outcome
	}

	salt, err := domain.NewSalt()
	if err != nil {
		outcome.Err = err
		return outcome
	}

	uploadedAt := time.Now().UTC()
	key := domain.DeriveStorageKey(sessionID, f.Filename, uploadedAt, salt)

	putCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreOpTimeout)
	defer cancel()

	location, err := s.storage.PutObject(putCtx, port.PutObjectInput{
		Key:         key,
		Data:        f.Data,
		ContentType: f.ContentType,
		Metadata:    uploadMetadata(sessionID, f.Filename, f.SizeBytes, f.ContentType, uploadedAt),
		Tags:        uploadTags(sessionID, uploadedAt),
	})
	if err != nil {
		outcome.Err = err
		return outcome
	}

	downloadURL, _, err := s.storage.GeneratePresignedURLForDownload(ctx, key)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	s.audit.Record(domain.AuditEvent{
		Timestamp:        uploadedAt,
		SessionID:        sessionID,
		OriginalFilename: f.Filename,
		StorageKey:       key,
		ClientIP:         origin.ClientIP,
		UserAgent:        origin.UserAgent,
		Kind:             domain.EventKindUpload,
	})

	outcome.Key = key
	outcome.Location = location
	outcome.SizeBytes = f.SizeBytes
	outcome.ContentType = f.ContentType
	outcome.UploadedAt = uploadedAt
	outcome.DownloadURL = downloadURL
	return outcome
}
