package storage

import (
	"context"
	"time"

	"filevault/internal/core/domain"
	"filevault/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) PutObject(ctx context.Context, in port.PutObjectInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GeneratePresignedURLForDownload(ctx context.Context, fileKey string) (string, time.Time, error) {
	args := m.Called(ctx, fileKey)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockStorage) GeneratePresignedURLForUpload(ctx context.Context, fileKey string, contentType string, metadata map[string]string) (string, map[string]string, time.Time, error) {
	args := m.Called(ctx, fileKey, contentType, metadata)
	return args.String(0), args.Get(1).(map[string]string), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockStorage) ListObjects(ctx context.Context, prefix string) ([]domain.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]domain.ObjectInfo), args.Error(1)
}

func (m *MockStorage) DeleteObject(ctx context.Context, fileKey string) error {
	args := m.Called(ctx, fileKey)
	return args.Error(0)
}
