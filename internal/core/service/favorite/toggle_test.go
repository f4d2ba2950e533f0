package favorite_test

import (
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"doclib/internal/core/service/favorite"
	"doclib/internal/core/service/metadata"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const window = 30 * time.Millisecond

func testConfig() config.FavoriteConfig {
	return config.FavoriteConfig{DebounceWindow: window, DisplayLimit: 4, WriteTimeout: time.Second}
}

func newSync(meta *metadata.MockMetadataService, docs ...domain.Document) *favorite.Sync {
	s := favorite.NewSync(meta, nil, testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Track(docs...)
	return s
}

func newDocument(isFavorite bool) domain.Document {
	return domain.Document{ID: uuid.New(), Title: "Suites numériques", IsFavorite: isFavorite}
}

// countWrites records every SetFavorite call and the value it carried
func countWrites(meta *metadata.MockMetadataService, id uuid.UUID, value bool, err error, count *atomic.Int32) {
	meta.On("SetFavorite", mock.Anything, id, value).Run(func(args mock.Arguments) {
		count.Add(1)
	}).Return(err)
}

func TestSync_ToggleBurstCoalesces(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	doc := newDocument(false)
	s := newSync(meta, doc)
	defer s.Close()

	var writesFalse, writesTrue atomic.Int32
	countWrites(meta, doc.ID, false, nil, &writesFalse)
	countWrites(meta, doc.ID, true, nil, &writesTrue)
	meta.On("FetchFavorites", mock.Anything, (*string)(nil)).Return([]domain.Document{}, nil)

	//Act
	current := false
	for i := 0; i < 4; i++ {
		next, err := s.Toggle(doc.ID, current)
		require.NoError(t, err)
		require.Equal(t, !current, next)
		current = next
	}

	//Assert
	assert.Eventually(t, func() bool { return writesFalse.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * window)
	assert.Equal(t, int32(1), writesFalse.Load())
	assert.Equal(t, int32(0), writesTrue.Load())

	value, known := s.IsFavorite(doc.ID)
	assert.True(t, known)
	assert.False(t, value)
	assert.Empty(t, s.DrainErrors())
}

func TestSync_FailedWriteRollsBack(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	doc := newDocument(true)
	s := newSync(meta, doc)
	defer s.Close()

	var writes atomic.Int32
	countWrites(meta, doc.ID, false, assert.AnError, &writes)

	//Act
	current := true
	for i := 0; i < 5; i++ {
		next, err := s.Toggle(doc.ID, current)
		require.NoError(t, err)
		current = next
	}
	require.False(t, current)
	value, _ := s.IsFavorite(doc.ID)
	require.False(t, value)

	//Assert
	assert.Eventually(t, func() bool { return writes.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		value, _ := s.IsFavorite(doc.ID)
		return value
	}, time.Second, 5*time.Millisecond)

	errs := s.DrainErrors()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrFavoriteWriteFailed)
	assert.ErrorIs(t, errs[0], assert.AnError)
	var writeErr *domain.FavoriteWriteError
	require.ErrorAs(t, errs[0], &writeErr)
	assert.Equal(t, doc.ID, writeErr.DocumentID)
	assert.Empty(t, s.DrainErrors())

	favorites := s.Favorites()
	require.Len(t, favorites, 1)
	assert.Equal(t, doc.ID, favorites[0].ID)
	meta.AssertNotCalled(t, "FetchFavorites", mock.Anything, mock.Anything)
}

func TestSync_DocumentsAreIndependent(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	first, second := newDocument(false), newDocument(true)
	s := newSync(meta, first, second)
	defer s.Close()

	var firstWrites, secondWrites atomic.Int32
	countWrites(meta, first.ID, true, nil, &firstWrites)
	countWrites(meta, second.ID, false, assert.AnError, &secondWrites)
	meta.On("FetchFavorites", mock.Anything, (*string)(nil)).Return([]domain.Document{first}, nil)

	//Act
	_, err := s.Toggle(first.ID, false)
	require.NoError(t, err)
	_, err = s.Toggle(second.ID, true)
	require.NoError(t, err)

	//Assert
	assert.Eventually(t, func() bool {
		return firstWrites.Load() == 1 && secondWrites.Load() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		value, _ := s.IsFavorite(second.ID)
		return value
	}, time.Second, 5*time.Millisecond)

	value, _ := s.IsFavorite(first.ID)
	assert.True(t, value)
}

func TestSync_LocalUpdateIsImmediate(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	docs := []domain.Document{newDocument(false), newDocument(false), newDocument(false), newDocument(false), newDocument(false)}
	s := newSync(meta, docs...)

	//Act
	for _, doc := range docs {
		_, err := s.Toggle(doc.ID, false)
		require.NoError(t, err)
	}

	//Assert
	favorites := s.Favorites()
	require.Len(t, favorites, 4)
	assert.Equal(t, docs[4].ID, favorites[0].ID)
	for _, doc := range favorites {
		assert.True(t, doc.IsFavorite)
	}
	s.Close()
	meta.AssertNotCalled(t, "SetFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestSync_RefreshAfterWrite(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	doc := newDocument(false)
	other := newDocument(true)
	s := newSync(meta, doc)
	defer s.Close()

	meta.On("SetFavorite", mock.Anything, doc.ID, true).Return(nil)
	meta.On("FetchFavorites", mock.Anything, (*string)(nil)).Return([]domain.Document{{ID: doc.ID, IsFavorite: true}, other}, nil)

	//Act
	_, err := s.Toggle(doc.ID, false)
	require.NoError(t, err)

	//Assert
	assert.Eventually(t, func() bool { return len(s.Favorites()) == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.Knows(other.ID))
	favorites := s.Favorites()
	assert.Equal(t, doc.ID, favorites[0].ID)
	assert.Equal(t, other.ID, favorites[1].ID)
}

func TestSync_OneInFlightWritePerDocument(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	doc := newDocument(false)
	s := newSync(meta, doc)
	defer s.Close()

	release := make(chan struct{})
	var active, overlaps, writes atomic.Int32
	meta.On("SetFavorite", mock.Anything, doc.ID, mock.Anything).Run(func(args mock.Arguments) {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		if writes.Add(1) == 1 {
			<-release
		}
		active.Add(-1)
	}).Return(nil)
	meta.On("FetchFavorites", mock.Anything, (*string)(nil)).Return([]domain.Document{}, nil)

	//Act
	_, err := s.Toggle(doc.ID, false)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return writes.Load() == 1 }, time.Second, 5*time.Millisecond)

	_, err = s.Toggle(doc.ID, true)
	require.NoError(t, err)
	time.Sleep(3 * window)
	blockedWrites := writes.Load()
	close(release)

	//Assert
	assert.Equal(t, int32(1), blockedWrites)
	assert.Eventually(t, func() bool { return writes.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), overlaps.Load())
	value, _ := s.IsFavorite(doc.ID)
	assert.False(t, value)
}

func TestSync_CloseDropsPendingWrites(t *testing.T) {

	//Arrange
	meta := &metadata.MockMetadataService{}
	doc := newDocument(false)
	s := newSync(meta, doc)

	_, err := s.Toggle(doc.ID, false)
	require.NoError(t, err)

	//Act
	s.Close()
	time.Sleep(3 * window)

	//Assert
	meta.AssertNotCalled(t, "SetFavorite", mock.Anything, mock.Anything, mock.Anything)
	_, err = s.Toggle(doc.ID, true)
	require.ErrorIs(t, err, domain.ErrViewClosed)
}

func TestSync_UnknownDocument(t *testing.T) {
	s := newSync(&metadata.MockMetadataService{})
	defer s.Close()

	_, err := s.Toggle(uuid.New(), false)

	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
