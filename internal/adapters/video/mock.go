package video

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockResolver struct {
	mock.Mock
}

func NewMockResolver() *MockResolver {
	return &MockResolver{}
}

func (m *MockResolver) Resolve(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(*domain.VideoMetadata), args.Error(1)
}
