package wizard

import (
	"context"
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"doclib/internal/core/service/upload"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry owns the open imports. Every wizard gets its own upload pipeline.
type Registry struct {
	store    port.ObjectStore
	uow      port.UnitOfWork
	resolver port.VideoResolver
	metadata port.MetadataService
	cfg      config.UploadConfig
	logger   *slog.Logger

	mu      sync.Mutex
	wizards map[uuid.UUID]*Wizard
}

// NewRegistry returns an empty Registry
func NewRegistry(store port.ObjectStore, uow port.UnitOfWork, resolver port.VideoResolver, metadata port.MetadataService, cfg config.UploadConfig, logger *slog.Logger) *Registry {
	return &Registry{
		store:    store,
		uow:      uow,
		resolver: resolver,
		metadata: metadata,
		cfg:      cfg,
		logger:   logger,
		wizards:  make(map[uuid.UUID]*Wizard),
	}
}

func (r *Registry) Open() port.ImportWizard {
	pipeline := upload.NewPipeline(r.store, r.uow, r.cfg, r.logger)
	w := NewWizard(pipeline, r.resolver, r.metadata, r.store, r.logger)

	r.mu.Lock()
	r.wizards[w.ID()] = w
	r.mu.Unlock()

	r.logger.Info("import opened", "importID", w.ID().String())
	return w
}

func (r *Registry) Get(id uuid.UUID) (port.ImportWizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wizards[id]
	if !ok {
		return nil, domain.ErrImportNotFound
	}
	return w, nil
}

// Close abandons the import and forgets it. An import that is saving cannot be closed.
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	w, ok := r.wizards[id]
	r.mu.Unlock()
	if !ok {
		return domain.ErrImportNotFound
	}

	if err := w.Abandon(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.wizards, id)
	r.mu.Unlock()
	return nil
}

// CloseAll abandons every open import, used on shutdown
func (r *Registry) CloseAll() {
	r.mu.Lock()
	wizards := make([]*Wizard, 0, len(r.wizards))
	for _, w := range r.wizards {
		wizards = append(wizards, w)
	}
	r.mu.Unlock()

	for _, w := range wizards {
		if err := r.Close(w.ID()); err != nil {
			r.logger.Warn("could not close import", "importID", w.ID().String(), "error", err)
		}
	}
}

// RenewLeases keeps the uploads of every open import out of the orphan sweep
func (r *Registry) RenewLeases(ctx context.Context) error {
	r.mu.Lock()
	wizards := make([]*Wizard, 0, len(r.wizards))
	for _, w := range r.wizards {
		wizards = append(wizards, w)
	}
	r.mu.Unlock()

	var errs []error
	for _, w := range wizards {
		if err := w.pipeline.Renew(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
