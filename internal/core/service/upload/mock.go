package upload

import (
	"doclib/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockTransfer is a mock implementation of UploadTransfer
type MockTransfer struct {
	mock.Mock
}

// NewMockTransfer returns a MockTransfer whose progress channel yields events and is then closed
func NewMockTransfer(events ...domain.UploadProgress) *MockTransfer {
	ch := make(chan domain.UploadProgress, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)

	m := &MockTransfer{}
	m.On("Progress").Return((<-chan domain.UploadProgress)(ch))
	return m
}

func (m *MockTransfer) Progress() <-chan domain.UploadProgress {
	args := m.Called()
	return args.Get(0).(<-chan domain.UploadProgress)
}

func (m *MockTransfer) Wait() (domain.ProvisionalUpload, error) {
	args := m.Called()
	return args.Get(0).(domain.ProvisionalUpload), args.Error(1)
}
