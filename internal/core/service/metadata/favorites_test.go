package metadata_test

import (
	"context"
	"doclib/internal/adapters/repository"
	"doclib/internal/core/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFavorite(t *testing.T) {

	//Arrange
	ctx := context.Background()
	uow := repository.NewMockUnitOfWork()
	service := newService(uow)
	id := uuid.New()
	uow.GetDocumentRepoMock().On("UpdateFavorite", ctx, id, true).Return(nil)

	//Act
	err := service.SetFavorite(ctx, id, true)

	//Assert
	require.NoError(t, err)
	uow.GetDocumentRepoMock().AssertExpectations(t)
}

func TestFetchFavorites(t *testing.T) {

	//Arrange
	ctx := context.Background()
	uow := repository.NewMockUnitOfWork()
	service := newService(uow)
	school := "Lycée Victor Hugo"
	favorites := []domain.Document{{ID: uuid.New(), IsFavorite: true, School: school}}
	uow.GetDocumentRepoMock().On("FindFavorites", ctx, &school, 4).Return(favorites, nil)

	//Act
	found, err := service.FetchFavorites(ctx, &school)

	//Assert
	require.NoError(t, err)
	assert.Equal(t, favorites, found)
}

func TestGetDocument(t *testing.T) {

	//Arrange
	ctx := context.Background()
	uow := repository.NewMockUnitOfWork()
	service := newService(uow)
	id, tagID := uuid.New(), uuid.New()
	uow.GetDocumentRepoMock().On("FindByID", ctx, id).Return(&domain.Document{ID: id, Title: "Suites"}, nil)
	uow.GetDocumentTagRepoMock().On("FindByDocumentID", ctx, id).Return([]domain.DocumentTag{{DocumentID: id, TagID: tagID}}, nil)
	uow.GetTagRepoMock().On("FindByIDs", ctx, []uuid.UUID{tagID}).Return([]domain.Tag{{ID: tagID, Name: "BAC"}}, nil)

	//Act
	doc, err := service.GetDocument(ctx, id)

	//Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"BAC"}, doc.Tags)
}

func TestGetDocument_notFound(t *testing.T) {

	//Arrange
	ctx := context.Background()
	uow := repository.NewMockUnitOfWork()
	service := newService(uow)
	id := uuid.New()
	uow.GetDocumentRepoMock().On("FindByID", ctx, id).Return((*domain.Document)(nil), domain.ErrDocumentNotFound)

	//Act
	doc, err := service.GetDocument(ctx, id)

	//Assert
	require.Nil(t, doc)
	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
