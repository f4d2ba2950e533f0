package favorite

import (
	"context"
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Views owns the open favorites views
type Views struct {
	metadata port.MetadataService
	cfg      config.FavoriteConfig
	logger   *slog.Logger

	mu    sync.Mutex
	views map[uuid.UUID]*Sync
}

// NewViews returns an empty Views
func NewViews(metadata port.MetadataService, cfg config.FavoriteConfig, logger *slog.Logger) *Views {
	return &Views{
		metadata: metadata,
		cfg:      cfg,
		logger:   logger,
		views:    make(map[uuid.UUID]*Sync),
	}
}

// Open loads the favorites of school into a new view
func (v *Views) Open(ctx context.Context, school *string) (port.FavoriteView, error) {
	favorites, err := v.metadata.FetchFavorites(ctx, school)
	if err != nil {
		return nil, err
	}

	s := NewSync(v.metadata, school, v.cfg, v.logger)
	s.mu.Lock()
	s.refresh(favorites)
	s.mu.Unlock()

	v.mu.Lock()
	v.views[s.ID()] = s
	v.mu.Unlock()

	return s, nil
}

func (v *Views) Get(id uuid.UUID) (port.FavoriteView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	s, ok := v.views[id]
	if !ok {
		return nil, domain.ErrViewNotFound
	}
	return s, nil
}

// Close tears a view down. Unsent toggles are dropped.
func (v *Views) Close(id uuid.UUID) error {
	v.mu.Lock()
	s, ok := v.views[id]
	delete(v.views, id)
	v.mu.Unlock()

	if !ok {
		return domain.ErrViewNotFound
	}
	s.Close()
	return nil
}

func (v *Views) CloseAll() {
	v.mu.Lock()
	views := v.views
	v.views = make(map[uuid.UUID]*Sync)
	v.mu.Unlock()

	for _, s := range views {
		s.Close()
	}
}
