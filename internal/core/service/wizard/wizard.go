package wizard

import (
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// videoGuidance is shown with every video resolution failure
const videoGuidance = "Paste the address of a public YouTube, Vimeo or Dailymotion video."

// Wizard drives one import from source selection to a committed document
type Wizard struct {
	id       uuid.UUID
	pipeline port.UploadPipeline
	resolver port.VideoResolver
	metadata port.MetadataService
	store    port.ObjectStore
	logger   *slog.Logger

	mu         sync.Mutex
	step       domain.WizardStep
	source     *domain.Source
	details    domain.DocumentDetails
	documentID *uuid.UUID

	// fallback is the confirmed external source restored when the file that replaced it fails
	fallback *domain.Source
}

// NewWizard returns a wizard in source selection owning pipeline
func NewWizard(pipeline port.UploadPipeline, resolver port.VideoResolver, metadata port.MetadataService, store port.ObjectStore, logger *slog.Logger) *Wizard {
	id := uuid.New()
	return &Wizard{
		id:       id,
		pipeline: pipeline,
		resolver: resolver,
		metadata: metadata,
		store:    store,
		logger:   logger.With("importID", id.String()),
		step:     domain.WizardStepSourceSelection,
	}
}

func (w *Wizard) ID() uuid.UUID {
	return w.id
}

// Snapshot returns a copy of the wizard state
func (w *Wizard) Snapshot() domain.WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.settleSource()
	snapshot := domain.WizardSnapshot{
		ID:         w.id,
		Step:       w.step,
		Upload:     w.pipeline.Snapshot(),
		Details:    w.details,
		DocumentID: w.documentID,
	}
	snapshot.Details.Tags = append([]string(nil), w.details.Tags...)
	if w.source != nil {
		source := *w.source
		snapshot.Source = &source
	}
	return snapshot
}

func (w *Wizard) setStep(to domain.WizardStep) error {
	if err := validateTransition(w.step, to); err != nil {
		return err
	}
	w.logger.Debug("import step changed", "from", w.step, "to", to)
	w.step = to
	return nil
}
