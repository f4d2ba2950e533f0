package wizard

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"fmt"
	"net/url"
)

// SelectFile starts uploading file as the import source. Any earlier uncommitted upload is replaced.
func (w *Wizard) SelectFile(ctx context.Context, file port.UploadFile) (port.UploadTransfer, error) {
	w.mu.Lock()
	if err := requireStep(w.step, domain.WizardStepSourceSelection); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.mu.Unlock()

	transfer, err := w.pipeline.UploadFile(ctx, file)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	fallback := w.source
	if fallback != nil && fallback.Kind == domain.SourceKindUploadedFile {
		fallback = w.fallback
	}
	w.fallback = fallback
	w.source = &domain.Source{
		Kind:      domain.SourceKindUploadedFile,
		FileName:  file.Name,
		MimeType:  file.MimeType,
		SizeBytes: file.Size,
	}
	w.mu.Unlock()

	return transfer, nil
}

// settleSource puts back the previous external source once the file upload that replaced it has failed.
// w.mu must be held.
func (w *Wizard) settleSource() {
	if w.source == nil || w.source.Kind != domain.SourceKindUploadedFile {
		return
	}
	if w.pipeline.Snapshot().Status == domain.UploadStatusError {
		w.source = w.fallback
		w.fallback = nil
	}
}

// CancelUpload aborts the file upload and deletes whatever was written
func (w *Wizard) CancelUpload() error {
	w.mu.Lock()
	if err := requireStep(w.step, domain.WizardStepSourceSelection); err != nil {
		w.mu.Unlock()
		return err
	}
	if w.source != nil && w.source.Kind == domain.SourceKindUploadedFile {
		w.source = w.fallback
		w.fallback = nil
	}
	w.mu.Unlock()

	w.pipeline.CancelUpload()
	return nil
}

// SelectVideo resolves rawURL and makes it the import source. On failure the current source is kept
// and nothing is sent to the object store.
func (w *Wizard) SelectVideo(ctx context.Context, rawURL string) error {
	w.mu.Lock()
	if err := requireStep(w.step, domain.WizardStepSourceSelection); err != nil {
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	meta, err := w.resolver.Resolve(ctx, rawURL)
	if err != nil {
		w.logger.Info("video rejected", "url", rawURL, "error", err)
		return &domain.VideoResolutionError{URL: rawURL, Err: err, Guidance: videoGuidance}
	}

	return w.confirmExternal(domain.Source{
		Kind:  domain.SourceKindExternalVideo,
		Ref:   rawURL,
		Video: meta,
	})
}

// SelectLink records rawURL verbatim as the import source
func (w *Wizard) SelectLink(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
	}

	return w.confirmExternal(domain.Source{
		Kind: domain.SourceKindExternalLink,
		Ref:  rawURL,
	})
}

func (w *Wizard) confirmExternal(source domain.Source) error {
	w.mu.Lock()
	if err := requireStep(w.step, domain.WizardStepSourceSelection); err != nil {
		w.mu.Unlock()
		return err
	}
	discardFile := w.source != nil && w.source.Kind == domain.SourceKindUploadedFile
	w.source = &source
	w.fallback = nil
	w.mu.Unlock()

	if discardFile {
		w.pipeline.CancelUpload()
	}
	return nil
}

// Advance moves to details entry once a source is acquired
func (w *Wizard) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := requireStep(w.step, domain.WizardStepSourceSelection); err != nil {
		return err
	}
	w.settleSource()
	if w.source == nil {
		if upload := w.pipeline.Snapshot(); upload.Status == domain.UploadStatusError {
			return fmt.Errorf("%w: %s", domain.ErrNoSource, upload.Error)
		}
		return domain.ErrNoSource
	}

	if w.source.Kind == domain.SourceKindUploadedFile {
		upload := w.pipeline.Snapshot()
		switch upload.Status {
		case domain.UploadStatusUploading:
			return domain.ErrWaitForUpload
		case domain.UploadStatusCompleted:
			w.source.Bucket = upload.Bucket
			w.source.Ref = upload.FilePath
			w.source.MimeType = upload.MimeType
		default:
			return domain.ErrNoSource
		}
	}

	return w.setStep(domain.WizardStepDetailsEntry)
}

// Back returns to source selection keeping the acquired source
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.setStep(domain.WizardStepSourceSelection)
}
