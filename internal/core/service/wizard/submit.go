package wizard

import (
	"context"
	"doclib/internal/core/domain"
	"fmt"
)

// Submit creates the document. A failed commit returns to details entry and keeps the uploaded object
// so the next attempt reuses it.
func (w *Wizard) Submit(ctx context.Context) (*domain.Document, error) {
	w.mu.Lock()
	if w.step == domain.WizardStepSaving {
		w.mu.Unlock()
		return nil, domain.ErrCommitInProgress
	}
	if err := requireStep(w.step, domain.WizardStepDetailsEntry); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if missing := w.missingFields(); len(missing) > 0 {
		w.mu.Unlock()
		return nil, &domain.ValidationError{Missing: missing}
	}

	fields := domain.DocumentFields{DocumentDetails: w.details, Source: *w.source}
	fields.Tags = append([]string(nil), w.details.Tags...)
	if err := w.setStep(domain.WizardStepSaving); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.mu.Unlock()

	var err error
	if fields.Source.Kind == domain.SourceKindUploadedFile {
		err = w.verifyObject(ctx, domain.UploadSlot{Bucket: fields.Source.Bucket, FilePath: fields.Source.Ref})
	}

	var doc *domain.Document
	if err == nil {
		doc, err = w.metadata.CreateDocument(ctx, fields)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.logger.Error("commit failed", "error", err)
		_ = w.setStep(domain.WizardStepDetailsEntry)
		return nil, fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}

	w.pipeline.MarkCommitted()
	w.documentID = &doc.ID
	_ = w.setStep(domain.WizardStepDone)
	w.logger.Info("import committed", "documentID", doc.ID)
	return doc, nil
}

// verifyObject fails when the uploaded object is gone. A store that cannot answer is only logged.
func (w *Wizard) verifyObject(ctx context.Context, slot domain.UploadSlot) error {
	exists, err := w.store.Exists(ctx, slot)
	switch {
	case err != nil:
		w.logger.Warn("could not verify uploaded object", "fileKey", slot.FilePath, "error", err)
	case !exists:
		return fmt.Errorf("%w: %s", domain.ErrUploadMissing, slot.FilePath)
	}
	return nil
}

// Abandon closes the import. Any uncommitted upload is deleted. Abandoning while saving is refused.
func (w *Wizard) Abandon() error {
	w.mu.Lock()
	switch w.step {
	case domain.WizardStepSaving:
		w.mu.Unlock()
		return domain.ErrCommitInProgress
	case domain.WizardStepDone, domain.WizardStepAbandoned:
		w.mu.Unlock()
		return nil
	}
	if err := w.setStep(domain.WizardStepAbandoned); err != nil {
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()

	w.pipeline.Reset()
	w.logger.Info("import abandoned")
	return nil
}
