package favorite

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockViews is a mock implementation of FavoriteViews
type MockViews struct {
	mock.Mock
}

// NewMockViews returns a MockViews
func NewMockViews() *MockViews {
	return &MockViews{}
}

func (m *MockViews) Open(ctx context.Context, school *string) (port.FavoriteView, error) {
	args := m.Called(ctx, school)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.FavoriteView), args.Error(1)
}

func (m *MockViews) Get(id uuid.UUID) (port.FavoriteView, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(port.FavoriteView), args.Error(1)
}

func (m *MockViews) Close(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockViews) CloseAll() {
	m.Called()
}

// MockView is a mock implementation of FavoriteView
type MockView struct {
	mock.Mock
}

// NewMockView returns a MockView
func NewMockView() *MockView {
	return &MockView{}
}

func (m *MockView) ID() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

func (m *MockView) Track(docs ...domain.Document) {
	m.Called(docs)
}

func (m *MockView) Knows(id uuid.UUID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockView) Toggle(id uuid.UUID, current bool) (bool, error) {
	args := m.Called(id, current)
	return args.Bool(0), args.Error(1)
}

func (m *MockView) IsFavorite(id uuid.UUID) (bool, bool) {
	args := m.Called(id)
	return args.Bool(0), args.Bool(1)
}

func (m *MockView) Favorites() []domain.Document {
	args := m.Called()
	return args.Get(0).([]domain.Document)
}

func (m *MockView) DrainErrors() []error {
	args := m.Called()
	return args.Get(0).([]error)
}

func (m *MockView) Close() {
	m.Called()
}
