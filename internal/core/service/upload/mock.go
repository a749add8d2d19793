package upload

import (
	"context"

	"filevault/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) UploadBatch(ctx context.Context, sessionID string, origin domain.RequestOrigin, files []domain.FileUpload) (*domain.BatchResult, error) {
	args := m.Called(ctx, sessionID, origin, files)
	return args.Get(0).(*domain.BatchResult), args.Error(1)
}

func (m *MockUploadService) RequestDirectUpload(ctx context.Context, sessionID string, filename string, contentType string) (*domain.AccessGrant, error) {
	args := m.Called(ctx, sessionID, filename, contentType)
	return args.Get(0).(*domain.AccessGrant), args.Error(1)
}
