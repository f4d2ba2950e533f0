package metadata

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/google/uuid"
)

// SetFavorite persists the favorite flag of a document
func (m *metadataService) SetFavorite(ctx context.Context, id uuid.UUID, value bool) error {
	return m.uow.DocumentRepo().UpdateFavorite(ctx, id, value)
}

// FetchFavorites returns the most recently favorited documents, optionally filtered by school
func (m *metadataService) FetchFavorites(ctx context.Context, school *string) ([]domain.Document, error) {
	return m.uow.DocumentRepo().FindFavorites(ctx, school, m.cfg.DisplayLimit)
}
