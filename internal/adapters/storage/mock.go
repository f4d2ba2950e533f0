package storage

import (
	"context"
	"doclib/internal/core/domain"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) NegotiateUploadSlot(ctx context.Context, fileName string, fileSize int64, mimeType string) (domain.UploadSlot, error) {
	args := m.Called(ctx, fileName, fileSize, mimeType)
	return args.Get(0).(domain.UploadSlot), args.Error(1)
}

func (m *MockStorage) Transfer(ctx context.Context, slot domain.UploadSlot, body io.Reader, size int64, mimeType string, onProgress func(sent int64)) error {
	args := m.Called(ctx, slot, body, size, mimeType, onProgress)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, slot domain.UploadSlot) (bool, error) {
	args := m.Called(ctx, slot)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, slot domain.UploadSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockStorage) Stat(ctx context.Context, slot domain.UploadSlot) (*domain.ObjectInfo, error) {
	args := m.Called(ctx, slot)
	return args.Get(0).(*domain.ObjectInfo), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, slot domain.UploadSlot) (io.ReadSeekCloser, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadSeekCloser), args.Error(1)
}
