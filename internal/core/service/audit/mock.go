package audit

import (
	"filevault/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of AuditRecorder
type MockRecorder struct {
	mock.Mock
}

// NewMockRecorder creates a new MockRecorder
func NewMockRecorder() *MockRecorder {
	return &MockRecorder{}
}

func (m *MockRecorder) Record(event domain.AuditEvent) {
	m.Called(event)
}
