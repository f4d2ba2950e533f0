package wizard_test

import (
	"context"
	"doclib/internal/adapters/storage"
	"doclib/internal/adapters/video"
	"doclib/internal/core/domain"
	"doclib/internal/core/service/metadata"
	"doclib/internal/core/service/wizard"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage("library")
	registry := wizard.NewRegistry(store, newLedger(), video.NewMockResolver(), &metadata.MockMetadataService{}, uploadConfig(), testLogger())

	t.Run("open and get", func(t *testing.T) {
		opened := registry.Open()

		found, err := registry.Get(opened.ID())

		require.NoError(t, err)
		assert.Equal(t, opened.ID(), found.ID())
		assert.Equal(t, domain.WizardStepSourceSelection, found.Snapshot().Step)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := registry.Get(uuid.New())
		require.ErrorIs(t, err, domain.ErrImportNotFound)
		require.ErrorIs(t, registry.Close(uuid.New()), domain.ErrImportNotFound)
	})

	t.Run("close deletes the uncommitted upload", func(t *testing.T) {
		opened := registry.Open()
		transfer, err := opened.SelectFile(ctx, reportFile())
		require.NoError(t, err)
		_, err = transfer.Wait()
		require.NoError(t, err)

		require.NoError(t, registry.Close(opened.ID()))

		assert.Empty(t, store.Keys())
		_, err = registry.Get(opened.ID())
		require.ErrorIs(t, err, domain.ErrImportNotFound)
	})

	t.Run("close all", func(t *testing.T) {
		first := registry.Open()
		second := registry.Open()

		registry.CloseAll()

		_, err := registry.Get(first.ID())
		require.ErrorIs(t, err, domain.ErrImportNotFound)
		_, err = registry.Get(second.ID())
		require.ErrorIs(t, err, domain.ErrImportNotFound)
	})
}
