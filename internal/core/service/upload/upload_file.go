package upload

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"fmt"
	"log/slog"
)

// maxProgressEvents bounds the progress channel: one event per percent from 0 to 100
const maxProgressEvents = 101

type transfer struct {
	progress    chan domain.UploadProgress
	done        chan struct{}
	cancel      context.CancelFunc
	cancelled   bool
	lastPercent int

	result domain.ProvisionalUpload
	err    error
}

func (t *transfer) Progress() <-chan domain.UploadProgress {
	return t.progress
}

func (t *transfer) Wait() (domain.ProvisionalUpload, error) {
	<-t.done
	return t.result, t.err
}

// UploadFile negotiates a slot for file and starts the transfer in the background.
// A previous completed upload that was never committed is deleted first.
func (p *Pipeline) UploadFile(ctx context.Context, file port.UploadFile) (port.UploadTransfer, error) {
	mimeType, err := p.validateFile(file)
	if err != nil {
		return nil, &domain.UploadError{Kind: domain.ErrSlotNegotiationFailed, Err: err}
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, domain.ErrPipelineClosed
	}
	if p.state.Status == domain.UploadStatusUploading {
		p.mu.Unlock()
		return nil, domain.ErrUploadInProgress
	}

	previous := p.state.Slot()
	if p.committed {
		previous = domain.UploadSlot{}
	}

	transferCtx, cancel := context.WithCancel(ctx)
	t := &transfer{
		progress:    make(chan domain.UploadProgress, maxProgressEvents),
		done:        make(chan struct{}),
		cancel:      cancel,
		lastPercent: -1,
	}
	p.current = t
	p.committed = false
	p.state = domain.ProvisionalUpload{
		FileName:  file.Name,
		MimeType:  mimeType,
		SizeBytes: file.Size,
		Status:    domain.UploadStatusUploading,
	}
	p.mu.Unlock()

	if !previous.IsZero() {
		p.logger.Info("replacing uncommitted upload", "fileKey", previous.FilePath)
		p.discard(previous)
	}

	slot, err := p.negotiate(transferCtx, file, mimeType)
	if err != nil {
		p.finish(t, err)
		return nil, t.err
	}

	p.mu.Lock()
	p.state.Bucket = slot.Bucket
	p.state.FilePath = slot.FilePath
	cancelled := t.cancelled
	p.mu.Unlock()

	if cancelled {
		p.finish(t, nil)
		return nil, t.err
	}

	go p.run(transferCtx, t, slot, file, mimeType)

	return t, nil
}

func (p *Pipeline) negotiate(ctx context.Context, file port.UploadFile, mimeType string) (domain.UploadSlot, error) {
	slot, err := p.store.NegotiateUploadSlot(ctx, file.Name, file.Size, mimeType)
	if err != nil {
		return domain.UploadSlot{}, &domain.UploadError{Kind: domain.ErrSlotNegotiationFailed, Err: err}
	}

	entry := domain.LedgerEntry{
		Bucket:    slot.Bucket,
		FilePath:  slot.FilePath,
		FileName:  file.Name,
		MimeType:  mimeType,
		SizeBytes: file.Size,
		Status:    domain.LedgerStatusNegotiated,
	}
	if err := p.uow.ProvisionalUploadRepo().Create(ctx, entry); err != nil {
		return domain.UploadSlot{}, &domain.UploadError{Kind: domain.ErrSlotNegotiationFailed, Err: fmt.Errorf("could not record slot: %w", err)}
	}

	return slot, nil
}

func (p *Pipeline) run(ctx context.Context, t *transfer, slot domain.UploadSlot, file port.UploadFile, mimeType string) {
	p.report(t, 0, file.Size)

	err := p.store.Transfer(ctx, slot, file.Body, file.Size, mimeType, func(sent int64) {
		p.report(t, sent, file.Size)
	})
	if err != nil {
		err = &domain.UploadError{Kind: domain.ErrTransferFailed, Err: err}
	} else {
		p.report(t, file.Size, file.Size)
	}

	p.finish(t, err)
}

func (p *Pipeline) report(t *transfer, sent, total int64) {
	percent := int(sent * 100 / total)
	if percent > 100 {
		percent = 100
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != t || t.cancelled || percent <= t.lastPercent {
		return
	}
	t.lastPercent = percent
	p.state.ProgressPercent = percent

	select {
	case t.progress <- domain.UploadProgress{BytesSent: sent, TotalBytes: total, ProgressPercent: percent}:
	default:
	}
}

// finish records the terminal result of t. err is nil on success.
func (p *Pipeline) finish(t *transfer, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case t.cancelled:
		t.err = domain.ErrTransferCancelled
		p.logger.Info("upload cancelled", "fileKey", p.state.FilePath)
	case err != nil:
		p.state.Status = domain.UploadStatusError
		p.state.Error = err.Error()
		t.err = err
		p.logger.Error("upload failed", "fileName", p.state.FileName, "fileKey", p.state.FilePath, "error", err)
	default:
		p.state.Status = domain.UploadStatusCompleted
		p.state.ProgressPercent = 100
		p.logger.Info("upload completed",
			slog.String("fileKey", p.state.FilePath),
			slog.String("bucket", p.state.Bucket),
			slog.Int64("size", p.state.SizeBytes))
	}

	t.result = p.state
	t.cancel()
	close(t.progress)
	close(t.done)
}
