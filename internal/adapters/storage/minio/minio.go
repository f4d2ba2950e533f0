package minio

import (
	"context"
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// NegotiateUploadSlot reserves a fresh object key for a file. Nothing is written to the bucket.
func (a *Adapter) NegotiateUploadSlot(ctx context.Context, fileName string, fileSize int64, mimeType string) (domain.UploadSlot, error) {
	if err := ctx.Err(); err != nil {
		return domain.UploadSlot{}, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("%s/%s%s", keyPrefix(mimeType), uuid.New().String(), ext)

	a.logger.Info("upload slot negotiated",
		slog.String("fileKey", key),
		slog.String("bucket", a.config.BucketName),
		slog.Int64("size", fileSize))

	return domain.UploadSlot{Bucket: a.config.BucketName, FilePath: key}, nil
}

// Transfer streams body into the slot, reporting the cumulative bytes sent
func (a *Adapter) Transfer(ctx context.Context, slot domain.UploadSlot, body io.Reader, size int64, mimeType string, onProgress func(sent int64)) error {
	opts := minio.PutObjectOptions{
		ContentType: mimeType,
	}
	if onProgress != nil {
		opts.Progress = &progressReader{onProgress: onProgress}
	}

	_, err := a.client.PutObject(ctx, slot.Bucket, slot.FilePath, body, size, opts)
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// Exists reports whether an object is present at slot
func (a *Adapter) Exists(ctx context.Context, slot domain.UploadSlot) (bool, error) {
	_, err := a.client.StatObject(ctx, slot.Bucket, slot.FilePath, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to get object info: %w", err)
	}
	return true, nil
}

// Delete deletes an object from storage
func (a *Adapter) Delete(ctx context.Context, slot domain.UploadSlot) error {
	err := a.client.RemoveObject(ctx, slot.Bucket, slot.FilePath, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", slot.FilePath),
		slog.String("bucket", slot.Bucket))

	return nil
}

// Stat retrieves obj info
func (a *Adapter) Stat(ctx context.Context, slot domain.UploadSlot) (*domain.ObjectInfo, error) {
	info, err := a.client.StatObject(ctx, slot.Bucket, slot.FilePath, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object info: %w", err)
	}
	return &domain.ObjectInfo{
		Bucket:      slot.Bucket,
		FilePath:    slot.FilePath,
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

// Open retrieves an obj
// Open returns the object for random access. Reads are fetched lazily with range requests.
func (a *Adapter) Open(ctx context.Context, slot domain.UploadSlot) (io.ReadSeekCloser, error) {
	object, err := a.client.GetObject(ctx, slot.Bucket, slot.FilePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return object, nil
}

func keyPrefix(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "videos"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case strings.HasPrefix(mimeType, "image/"):
		return "images"
	default:
		return "documents"
	}
}

// progressReader is handed to minio as PutObjectOptions.Progress; minio reads from it
// the same number of bytes it sends.
type progressReader struct {
	sent       atomic.Int64
	onProgress func(sent int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n := len(b)
	p.onProgress(p.sent.Add(int64(n)))
	return n, nil
}
