package vault

import (
	"context"
	"strings"

	"filevault/internal/core/domain"
)

// ListObjects returns every object under the session's namespace, each
// with a freshly issued read grant. The summary key is the derived key
// suffix, which download and delete accept as the lookup token.
func (s *vaultService) ListObjects(ctx context.Context, claimedSessionID, callerSessionID string) ([]domain.ObjectSummary, error) {
	if err := authorize(claimedSessionID, callerSessionID); err != nil {
		return nil, err
	}

	prefix := domain.SessionPrefix(callerSessionID)

	listCtx, cancel := context.WithTimeout(ctx, s.cfg.StoreOpTimeout)
	defer cancel()

	objects, err := s.storage.ListObjects(listCtx, prefix)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ObjectSummary, 0, len(objects))
	for _, object := range objects {
		downloadURL, _, err := s.storage.GeneratePresignedURLForDownload(ctx, object.Key)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, domain.ObjectSummary{
			Key:          strings.TrimPrefix(object.Key, prefix),
			SizeBytes:    object.SizeBytes,
			LastModified: object.LastModified,
			DownloadURL:  downloadURL,
		})
	}

	return summaries, nil
}
