package favorite_test

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/service/favorite"
	"doclib/internal/core/service/metadata"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViews(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("open loads the favorites of the school", func(t *testing.T) {
		meta := &metadata.MockMetadataService{}
		school := "Lycée Victor Hugo"
		doc := newDocument(true)
		meta.On("FetchFavorites", ctx, &school).Return([]domain.Document{doc}, nil)
		views := favorite.NewViews(meta, testConfig(), logger)

		view, err := views.Open(ctx, &school)

		require.NoError(t, err)
		assert.True(t, view.Knows(doc.ID))
		assert.Len(t, view.Favorites(), 1)
		found, err := views.Get(view.ID())
		require.NoError(t, err)
		assert.Equal(t, view.ID(), found.ID())
	})

	t.Run("open fails", func(t *testing.T) {
		meta := &metadata.MockMetadataService{}
		meta.On("FetchFavorites", ctx, (*string)(nil)).Return([]domain.Document(nil), assert.AnError)
		views := favorite.NewViews(meta, testConfig(), logger)

		_, err := views.Open(ctx, nil)

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("close", func(t *testing.T) {
		meta := &metadata.MockMetadataService{}
		meta.On("FetchFavorites", ctx, (*string)(nil)).Return([]domain.Document{}, nil)
		views := favorite.NewViews(meta, testConfig(), logger)
		view, err := views.Open(ctx, nil)
		require.NoError(t, err)

		require.NoError(t, views.Close(view.ID()))

		_, err = views.Get(view.ID())
		require.ErrorIs(t, err, domain.ErrViewNotFound)
		require.ErrorIs(t, views.Close(uuid.New()), domain.ErrViewNotFound)
	})

	t.Run("close all", func(t *testing.T) {
		meta := &metadata.MockMetadataService{}
		meta.On("FetchFavorites", ctx, (*string)(nil)).Return([]domain.Document{}, nil)
		views := favorite.NewViews(meta, testConfig(), logger)
		view, err := views.Open(ctx, nil)
		require.NoError(t, err)

		views.CloseAll()

		_, err = views.Get(view.ID())
		require.ErrorIs(t, err, domain.ErrViewNotFound)
	})
}
