package port

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/google/uuid"
)

// FavoriteView is the optimistic favorites state of one open view
type FavoriteView interface {
	ID() uuid.UUID
	Track(docs ...domain.Document)
	Knows(id uuid.UUID) bool
	Toggle(id uuid.UUID, current bool) (bool, error)
	IsFavorite(id uuid.UUID) (bool, bool)
	Favorites() []domain.Document
	DrainErrors() []error
	Close()
}

// FavoriteViews owns the open favorites views
type FavoriteViews interface {
	Open(ctx context.Context, school *string) (FavoriteView, error)
	Get(id uuid.UUID) (FavoriteView, error)
	Close(id uuid.UUID) error
	CloseAll()
}
