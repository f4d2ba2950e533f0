package upload

import (
	"context"
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"sync"
)

// Pipeline uploads one local file at a time and owns the resulting object until it is committed
type Pipeline struct {
	store  port.ObjectStore
	uow    port.UnitOfWork
	cfg    config.UploadConfig
	logger *slog.Logger

	mu        sync.Mutex
	state     domain.ProvisionalUpload
	current   *transfer
	committed bool
	closed    bool
}

// NewPipeline returns an idle Pipeline
func NewPipeline(store port.ObjectStore, uow port.UnitOfWork, cfg config.UploadConfig, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		store:  store,
		uow:    uow,
		cfg:    cfg,
		logger: logger,
		state:  domain.ProvisionalUpload{Status: domain.UploadStatusIdle},
	}
}

// Snapshot returns a copy of the current upload state
func (p *Pipeline) Snapshot() domain.ProvisionalUpload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// MarkCommitted hands the uploaded object over to a committed document. It is never deleted by the pipeline afterwards.
func (p *Pipeline) MarkCommitted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Status == domain.UploadStatusCompleted {
		p.committed = true
	}
}

// Renew touches the ledger entry of the owned object so the orphan sweep skips it.
// A missing entry is logged and tolerated.
func (p *Pipeline) Renew(ctx context.Context) error {
	p.mu.Lock()
	slot := p.state.Slot()
	owned := !slot.IsZero() && !p.committed
	p.mu.Unlock()

	if !owned {
		return nil
	}

	err := p.uow.ProvisionalUploadRepo().Touch(ctx, slot)
	if errors.Is(err, domain.ErrProvisionalUploadNotFound) {
		p.logger.Warn("provisional upload entry is gone", "bucket", slot.Bucket, "fileKey", slot.FilePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not renew %s: %w", slot.FilePath, err)
	}
	return nil
}

// discard removes an uncommitted object and its ledger entry. Failures are logged, never returned.
func (p *Pipeline) discard(slot domain.UploadSlot) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.CleanupTimeout)
	defer cancel()

	if err := p.store.Delete(ctx, slot); err != nil {
		p.logger.Warn("could not delete provisional upload", "bucket", slot.Bucket, "fileKey", slot.FilePath, "error", err)
		return
	}

	if err := p.uow.ProvisionalUploadRepo().Delete(ctx, slot); err != nil && !errors.Is(err, domain.ErrProvisionalUploadNotFound) {
		p.logger.Warn("could not delete provisional upload entry", "bucket", slot.Bucket, "fileKey", slot.FilePath, "error", err)
	}
}

// AllowedMimeTypes is a whitelist of supported document MIME types and their extensions.
// This is deterministic and does NOT rely on OS mime databases (Docker-safe).
var AllowedMimeTypes = map[string][]string{
	// Documents
	"application/pdf":    {".pdf"},
	"application/msword": {".doc"},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {".docx"},
	"application/vnd.ms-powerpoint":                                             {".ppt"},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {".pptx"},
	"application/vnd.ms-excel":                                                  {".xls"},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {".xlsx"},
	"application/vnd.oasis.opendocument.text":                                   {".odt"},
	"application/vnd.oasis.opendocument.presentation":                           {".odp"},
	"text/plain": {".txt"},

	// Images
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
	"image/gif":  {".gif"},

	// Audio
	"audio/mpeg": {".mp3"},
	"audio/wav":  {".wav"},
	"audio/ogg":  {".ogg"},

	// Vidéos
	"video/mp4":       {".mp4"},
	"video/webm":      {".webm"},
	"video/quicktime": {".mov"},
}

func (p *Pipeline) validateFile(file port.UploadFile) (string, error) {
	if file.Size <= 0 {
		return "", domain.ErrFileSizeTooSmall
	}
	if file.Size > p.cfg.MaxSize {
		return "", domain.ErrFileSizeTooBig
	}

	mimeType := extractMimeType(file.MimeType)
	if mimeType == "" {
		return "", fmt.Errorf("%w: invalid content type: %s", domain.ErrInvalidFileType, file.MimeType)
	}

	allowedExts, ok := AllowedMimeTypes[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported MIME type: %s", domain.ErrInvalidFileType, mimeType)
	}

	if err := validateExtension(file.Name, allowedExts); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidFileType, err)
	}

	return mimeType, nil
}

func validateExtension(filename string, allowedExts []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("no file extension found")
	}

	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf(
		"extension %s is not allowed (expected one of: %v)",
		ext, allowedExts,
	)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}
