package postgres_test

import (
	"context"
	"doclib/internal/adapters/repository/postgres"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlUnitOfWork_Execute(t *testing.T) {

	//Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()

	ctx := context.Background()
	uow := postgres.NewUnitOfWork(dbConnection)
	docRepo := postgres.NewSqlDocumentRepository(dbConnection)

	t.Run("Should commit when no error", func(t *testing.T) {
		defer truncate()
		doc := newTestDocument()

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			return u.DocumentRepo().Create(ctx, doc)
		})

		//assert
		require.NoError(t, err)
		found, err := docRepo.FindByID(ctx, doc.ID)
		require.NoError(t, err)
		require.Equal(t, doc.Title, found.Title)
	})

	t.Run("Should rollback when error occurs", func(t *testing.T) {
		doc := newTestDocument()

		//act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			_ = u.DocumentRepo().Create(ctx, doc)
			return assert.AnError
		})

		//assert
		require.ErrorIs(t, err, assert.AnError)
		_, err = docRepo.FindByID(ctx, doc.ID)
		require.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})
}
