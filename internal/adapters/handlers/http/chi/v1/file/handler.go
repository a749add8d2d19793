package file

import (
	"log/slog"
	"net/http"

	"filevault/internal/config"
	"filevault/internal/core/domain"
	"filevault/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 file routes
type HandlerV1 struct {
	uploadService port.UploadService
	vaultService  port.VaultService
	cfg           config.UploadConfig
	logger        *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(uploadService port.UploadService, vaultService port.VaultService, cfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: uploadService,
		vaultService:  vaultService,
		cfg:           cfg,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadBatchV1)
	router.Post("/presigned-url", h.PresignedUploadV1)
	router.Get("/files/{sessionID}", h.ListFilesV1)
	router.Get("/download/{sessionID}/{key}", h.DownloadV1)
	router.Delete("/files/{sessionID}/{key}", h.DeleteFileV1)

	return router
}

func requestOrigin(r *http.Request) domain.RequestOrigin {
	return domain.RequestOrigin{
		ClientIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}
