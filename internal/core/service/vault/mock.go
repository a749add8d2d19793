package vault

import (
	"context"

	"filevault/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockVaultService is a mock implementation of VaultService
type MockVaultService struct {
	mock.Mock
}

// NewMockVaultService creates a new MockVaultService
func NewMockVaultService() *MockVaultService {
	return &MockVaultService{}
}

func (m *MockVaultService) ListObjects(ctx context.Context, claimedSessionID, callerSessionID string) ([]domain.ObjectSummary, error) {
	args := m.Called(ctx, claimedSessionID, callerSessionID)
	return args.Get(0).([]domain.ObjectSummary), args.Error(1)
}

func (m *MockVaultService) DownloadGrant(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) (*domain.AccessGrant, error) {
	args := m.Called(ctx, claimedSessionID, callerSessionID, keySuffix, origin)
	return args.Get(0).(*domain.AccessGrant), args.Error(1)
}

func (m *MockVaultService) DeleteObject(ctx context.Context, claimedSessionID, callerSessionID, keySuffix string, origin domain.RequestOrigin) error {
	args := m.Called(ctx, claimedSessionID, callerSessionID, keySuffix, origin)
	return args.Error(0)
}
