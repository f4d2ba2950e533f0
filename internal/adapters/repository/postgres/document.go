package postgres

import (
	"context"
	"database/sql"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const documentColumns = `id, title, doc_type, subject, school, description, download_enabled,
       source_kind, storage_ref, storage_bucket, mime_type, size_bytes, page_count,
       duration_seconds, thumbnail_url, is_favorite, view_count, download_count,
       created_at, updated_at`

type sqlDocumentRepository struct {
	db SQLQuerier
}

// NewSqlDocumentRepository creates sqlDocumentRepository that implements port.DocumentRepository
func NewSqlDocumentRepository(db SQLQuerier) port.DocumentRepository {
	return &sqlDocumentRepository{
		db: db,
	}
}

// Create inserts a committed document
func (s *sqlDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	query := `INSERT INTO documents (id, title, doc_type, subject, school, description, download_enabled,
                                     source_kind, storage_ref, storage_bucket, mime_type, size_bytes, page_count,
                                     duration_seconds, thumbnail_url, is_favorite)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID, doc.Title, doc.Type, doc.Subject, doc.School, doc.Description, doc.DownloadEnabled,
		doc.SourceKind, doc.StorageRef, doc.StorageBucket, doc.MimeType, doc.SizeBytes, doc.PageCount,
		doc.DurationSeconds, doc.ThumbnailURL, doc.IsFavorite,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("document %s : %w", doc.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	var row dbDocument
	if err := row.scan(s.db.QueryRowContext(ctx, query, id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// UpdateFavorite sets the favorite flag
func (s *sqlDocumentRepository) UpdateFavorite(ctx context.Context, id uuid.UUID, value bool) error {
	query := `UPDATE documents 
              SET is_favorite = $1, updated_at = now()
              WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("error updating document favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}

	return nil
}

// FindFavorites lists the most recently favorited documents, optionally for one school
func (s *sqlDocumentRepository) FindFavorites(ctx context.Context, school *string, limit int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + documentColumns + `
              FROM documents
              WHERE is_favorite AND ($1::text IS NULL OR school = $1)
              ORDER BY updated_at DESC
              LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, school, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying favorite documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var row dbDocument
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}
		docs = append(docs, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// dbDocument represents a document in DB
type dbDocument struct {
	ID              uuid.UUID `db:"id"`
	Title           string    `db:"title"`
	Type            string    `db:"doc_type"`
	Subject         string    `db:"subject"`
	School          string    `db:"school"`
	Description     string    `db:"description"`
	DownloadEnabled bool      `db:"download_enabled"`
	SourceKind      string    `db:"source_kind"`
	StorageRef      string    `db:"storage_ref"`
	StorageBucket   string    `db:"storage_bucket"`
	MimeType        string    `db:"mime_type"`
	SizeBytes       int64     `db:"size_bytes"`
	PageCount       int       `db:"page_count"`
	DurationSeconds int       `db:"duration_seconds"`
	ThumbnailURL    string    `db:"thumbnail_url"`
	IsFavorite      bool      `db:"is_favorite"`
	ViewCount       int64     `db:"view_count"`
	DownloadCount   int64     `db:"download_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (d *dbDocument) scan(row rowScanner) error {
	return row.Scan(
		&d.ID, &d.Title, &d.Type, &d.Subject, &d.School, &d.Description, &d.DownloadEnabled,
		&d.SourceKind, &d.StorageRef, &d.StorageBucket, &d.MimeType, &d.SizeBytes, &d.PageCount,
		&d.DurationSeconds, &d.ThumbnailURL, &d.IsFavorite, &d.ViewCount, &d.DownloadCount,
		&d.CreatedAt, &d.UpdatedAt,
	)
}

// ToDomain converts to domain.Document
func (d *dbDocument) ToDomain() *domain.Document {
	return &domain.Document{
		ID:              d.ID,
		Title:           d.Title,
		Type:            d.Type,
		Subject:         d.Subject,
		School:          d.School,
		Description:     d.Description,
		DownloadEnabled: d.DownloadEnabled,
		SourceKind:      domain.SourceKind(d.SourceKind),
		StorageRef:      d.StorageRef,
		StorageBucket:   d.StorageBucket,
		MimeType:        d.MimeType,
		SizeBytes:       d.SizeBytes,
		PageCount:       d.PageCount,
		DurationSeconds: d.DurationSeconds,
		ThumbnailURL:    d.ThumbnailURL,
		IsFavorite:      d.IsFavorite,
		ViewCount:       d.ViewCount,
		DownloadCount:   d.DownloadCount,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
