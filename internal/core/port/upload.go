package port

import (
	"context"
	"doclib/internal/core/domain"
	"io"
)

// UploadFile is a local file handed to the pipeline
type UploadFile struct {
	Name     string
	Size     int64
	MimeType string
	Body     io.Reader
}

// UploadTransfer is a running upload
type UploadTransfer interface {
	// Progress is closed once the transfer ends.
	Progress() <-chan domain.UploadProgress
	Wait() (domain.ProvisionalUpload, error)
}

// UploadPipeline transfers one local file at a time to the object store
type UploadPipeline interface {
	UploadFile(ctx context.Context, file UploadFile) (UploadTransfer, error)
	CancelUpload()
	Reset()
	MarkCommitted()
	Renew(ctx context.Context) error
	Snapshot() domain.ProvisionalUpload
}
