package wizard

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRegistry is a mock implementation of ImportRegistry
type MockRegistry struct {
	mock.Mock
}

// NewMockRegistry returns a MockRegistry
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{}
}

func (m *MockRegistry) Open() port.ImportWizard {
	args := m.Called()
	return args.Get(0).(port.ImportWizard)
}

func (m *MockRegistry) Get(id uuid.UUID) (port.ImportWizard, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.ImportWizard), args.Error(1)
}

func (m *MockRegistry) Close(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRegistry) CloseAll() {
	m.Called()
}

// MockWizard is a mock implementation of ImportWizard
type MockWizard struct {
	mock.Mock
}

// NewMockWizard returns a MockWizard
func NewMockWizard() *MockWizard {
	return &MockWizard{}
}

func (m *MockWizard) ID() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

func (m *MockWizard) SelectFile(ctx context.Context, file port.UploadFile) (port.UploadTransfer, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.UploadTransfer), args.Error(1)
}

func (m *MockWizard) CancelUpload() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWizard) SelectVideo(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockWizard) SelectLink(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

func (m *MockWizard) Advance() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWizard) Back() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWizard) UpdateDetails(details domain.DocumentDetails) error {
	args := m.Called(details)
	return args.Error(0)
}

func (m *MockWizard) AddTag(tag string) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockWizard) RemoveTag(tag string) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockWizard) Submit(ctx context.Context) (*domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockWizard) Abandon() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWizard) Snapshot() domain.WizardSnapshot {
	args := m.Called()
	return args.Get(0).(domain.WizardSnapshot)
}
