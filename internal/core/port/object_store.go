package port

import (
	"context"
	"doclib/internal/core/domain"
	"io"
)

// ObjectStore is an interface to define object store interactions used by the import engine
type ObjectStore interface {
	NegotiateUploadSlot(ctx context.Context, fileName string, fileSize int64, mimeType string) (domain.UploadSlot, error)
	// Transfer streams body to slot. onProgress receives the cumulative number of bytes sent.
	// Cancelling ctx aborts the transport.
	Transfer(ctx context.Context, slot domain.UploadSlot, body io.Reader, size int64, mimeType string, onProgress func(sent int64)) error
	Exists(ctx context.Context, slot domain.UploadSlot) (bool, error)
	Delete(ctx context.Context, slot domain.UploadSlot) error
}

// ObjectReader is an interface to inspect stored objects
type ObjectReader interface {
	Stat(ctx context.Context, slot domain.UploadSlot) (*domain.ObjectInfo, error)
	Open(ctx context.Context, slot domain.UploadSlot) (io.ReadSeekCloser, error)
}
