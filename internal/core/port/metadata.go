package port

import (
	"context"
	"doclib/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// MetadataService is an interface to define the document metadata store
type MetadataService interface {
	CreateDocument(ctx context.Context, fields domain.DocumentFields) (*domain.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	SetFavorite(ctx context.Context, id uuid.UUID, value bool) error
	FetchFavorites(ctx context.Context, school *string) ([]domain.Document, error)
}

// DocumentRepository is an interface to define document repository interactions
type DocumentRepository interface {
	Create(ctx context.Context, doc domain.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateFavorite(ctx context.Context, id uuid.UUID, value bool) error
	FindFavorites(ctx context.Context, school *string, limit int) ([]domain.Document, error)
}

// TagRepository represents a tag repository implementation
type TagRepository interface {
	CreateMany(ctx context.Context, tags []string) (int, error)
	FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error)
}

// DocumentTagRepository links documents and tags
type DocumentTagRepository interface {
	CreateMany(ctx context.Context, documentID uuid.UUID, tagIDs []uuid.UUID) (int, error)
	FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentTag, error)
}

// ProvisionalUploadRepository is the durable ledger of negotiated slots
type ProvisionalUploadRepository interface {
	Create(ctx context.Context, entry domain.LedgerEntry) error
	FindBySlot(ctx context.Context, slot domain.UploadSlot) (*domain.LedgerEntry, error)
	MarkStored(ctx context.Context, slot domain.UploadSlot, sizeBytes int64, pageCount int) error
	MarkAttached(ctx context.Context, slot domain.UploadSlot) error
	Touch(ctx context.Context, slot domain.UploadSlot) error
	Delete(ctx context.Context, slot domain.UploadSlot) error
	FindUnattached(ctx context.Context, before time.Time) ([]domain.LedgerEntry, error)
}
