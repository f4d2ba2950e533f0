package metadata

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMetadataService is a mock implementation of MetadataService
type MockMetadataService struct {
	mock.Mock
}

func (m *MockMetadataService) CreateDocument(ctx context.Context, fields domain.DocumentFields) (*domain.Document, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockMetadataService) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockMetadataService) SetFavorite(ctx context.Context, id uuid.UUID, value bool) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockMetadataService) FetchFavorites(ctx context.Context, school *string) ([]domain.Document, error) {
	args := m.Called(ctx, school)
	return args.Get(0).([]domain.Document), args.Error(1)
}
