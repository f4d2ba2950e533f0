package storage

import (
	"bytes"
	"context"
	"doclib/internal/core/domain"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const memoryChunkSize = 32 * 1024

// MemoryStorage is an in-memory object store used by tests that assert on bucket contents
type MemoryStorage struct {
	mu      sync.Mutex
	bucket  string
	objects map[domain.UploadSlot]memoryObject

	// Hold, when set, pauses every transfer after its first chunk until it is closed or the transfer ctx ends.
	Hold chan struct{}
	// TransferErr, when set, fails transfers after the first chunk. Bytes already sent are kept
	// as a partial object.
	TransferErr error
	// DeleteErr, when set, is returned by Delete and the object is kept.
	DeleteErr error
}

type memoryObject struct {
	data        []byte
	contentType string
	partial     bool
}

// NewMemoryStorage returns an empty MemoryStorage
func NewMemoryStorage(bucket string) *MemoryStorage {
	return &MemoryStorage{
		bucket:  bucket,
		objects: make(map[domain.UploadSlot]memoryObject),
	}
}

func (m *MemoryStorage) NegotiateUploadSlot(ctx context.Context, fileName string, fileSize int64, mimeType string) (domain.UploadSlot, error) {
	if err := ctx.Err(); err != nil {
		return domain.UploadSlot{}, err
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	return domain.UploadSlot{Bucket: m.bucket, FilePath: fmt.Sprintf("documents/%s%s", uuid.New().String(), ext)}, nil
}

func (m *MemoryStorage) Transfer(ctx context.Context, slot domain.UploadSlot, body io.Reader, size int64, mimeType string, onProgress func(sent int64)) error {
	var buf bytes.Buffer
	chunk := make([]byte, memoryChunkSize)
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if onProgress != nil {
				onProgress(int64(buf.Len()))
			}
		}
		if first && n > 0 {
			first = false
			if m.TransferErr != nil {
				m.store(slot, buf.Bytes(), mimeType, true)
				return m.TransferErr
			}
			if m.Hold != nil {
				select {
				case <-m.Hold:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}
	if int64(buf.Len()) != size {
		return fmt.Errorf("short body: got %d bytes, want %d", buf.Len(), size)
	}
	m.store(slot, buf.Bytes(), mimeType, false)
	return nil
}

func (m *MemoryStorage) store(slot domain.UploadSlot, data []byte, contentType string, partial bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[slot] = memoryObject{data: bytes.Clone(data), contentType: contentType, partial: partial}
}

func (m *MemoryStorage) Exists(ctx context.Context, slot domain.UploadSlot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[slot]
	return ok, nil
}

func (m *MemoryStorage) Delete(ctx context.Context, slot domain.UploadSlot) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, slot)
	return nil
}

func (m *MemoryStorage) Stat(ctx context.Context, slot domain.UploadSlot) (*domain.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[slot]
	if !ok {
		return nil, fmt.Errorf("object %s not found", slot.FilePath)
	}
	return &domain.ObjectInfo{
		Bucket:      slot.Bucket,
		FilePath:    slot.FilePath,
		SizeBytes:   int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

func (m *MemoryStorage) Open(ctx context.Context, slot domain.UploadSlot) (io.ReadSeekCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[slot]
	if !ok {
		return nil, fmt.Errorf("object %s not found", slot.FilePath)
	}
	return NopSeekCloser(bytes.NewReader(obj.data)), nil
}

type nopSeekCloser struct {
	io.ReadSeeker
}

func (nopSeekCloser) Close() error { return nil }

// NopSeekCloser returns r with a no-op Close method
func NopSeekCloser(r io.ReadSeeker) io.ReadSeekCloser {
	return nopSeekCloser{r}
}

// Keys lists the stored object keys, partial ones included
func (m *MemoryStorage) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for slot := range m.objects {
		keys = append(keys, slot.FilePath)
	}
	sort.Strings(keys)
	return keys
}
