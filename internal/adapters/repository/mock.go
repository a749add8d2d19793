package repository

import (
	"context"

	"filevault/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuditRepository is a mock implementation of AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.AuditEvent, error) {
	args := m.Called(ctx, sessionID, limit)
	return args.Get(0).([]domain.AuditEvent), args.Error(1)
}
