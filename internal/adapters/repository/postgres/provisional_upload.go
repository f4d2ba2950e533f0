package postgres

import (
	"context"
	"database/sql"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"errors"
	"fmt"
	"time"
)

type sqlProvisionalUploadRepository struct {
	db SQLQuerier
}

// NewSQLProvisionalUploadRepository creates a new sqlProvisionalUploadRepository
func NewSQLProvisionalUploadRepository(db SQLQuerier) port.ProvisionalUploadRepository {
	return &sqlProvisionalUploadRepository{db: db}
}

// Create records a negotiated slot
func (s *sqlProvisionalUploadRepository) Create(ctx context.Context, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO provisional_uploads (bucket, file_path, file_name, mime_type, size_bytes, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		entry.Bucket,
		entry.FilePath,
		entry.FileName,
		entry.MimeType,
		entry.SizeBytes,
		domain.LedgerStatusNegotiated,
	)
	if err != nil {
		return fmt.Errorf("error inserting provisional upload: %w", err)
	}
	return nil
}

// FindBySlot finds the ledger entry of a slot
func (s *sqlProvisionalUploadRepository) FindBySlot(ctx context.Context, slot domain.UploadSlot) (*domain.LedgerEntry, error) {
	query := `
		SELECT bucket, file_path, file_name, mime_type, size_bytes, page_count, status, created_at, updated_at
		FROM provisional_uploads
		WHERE bucket = $1 AND file_path = $2`

	var entry domain.LedgerEntry
	err := s.db.QueryRowContext(ctx, query, slot.Bucket, slot.FilePath).Scan(
		&entry.Bucket,
		&entry.FilePath,
		&entry.FileName,
		&entry.MimeType,
		&entry.SizeBytes,
		&entry.PageCount,
		&entry.Status,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProvisionalUploadNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// MarkStored records that the object physically exists. Attached entries are left untouched.
func (s *sqlProvisionalUploadRepository) MarkStored(ctx context.Context, slot domain.UploadSlot, sizeBytes int64, pageCount int) error {
	query := `
		UPDATE provisional_uploads
		SET status = CASE WHEN status = 'attached' THEN status ELSE 'stored' END,
		    size_bytes = $1, page_count = $2, updated_at = now()
		WHERE bucket = $3 AND file_path = $4`

	return s.execOne(ctx, query, sizeBytes, pageCount, slot.Bucket, slot.FilePath)
}

// MarkAttached hands the object over to a committed document
func (s *sqlProvisionalUploadRepository) MarkAttached(ctx context.Context, slot domain.UploadSlot) error {
	query := `UPDATE provisional_uploads SET status = 'attached', updated_at = now() WHERE bucket = $1 AND file_path = $2`

	return s.execOne(ctx, query, slot.Bucket, slot.FilePath)
}

// Touch renews the lease of an entry that is still owned by a live upload
func (s *sqlProvisionalUploadRepository) Touch(ctx context.Context, slot domain.UploadSlot) error {
	query := `UPDATE provisional_uploads SET updated_at = now() WHERE bucket = $1 AND file_path = $2 AND status <> 'attached'`

	return s.execOne(ctx, query, slot.Bucket, slot.FilePath)
}

// Delete removes the ledger entry
func (s *sqlProvisionalUploadRepository) Delete(ctx context.Context, slot domain.UploadSlot) error {
	query := `DELETE FROM provisional_uploads WHERE bucket = $1 AND file_path = $2`

	return s.execOne(ctx, query, slot.Bucket, slot.FilePath)
}

// FindUnattached lists entries that no document owns and that were not touched since before
func (s *sqlProvisionalUploadRepository) FindUnattached(ctx context.Context, before time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT bucket, file_path, file_name, mime_type, size_bytes, page_count, status, created_at, updated_at
		FROM provisional_uploads
		WHERE status <> 'attached' AND updated_at < $1
		ORDER BY updated_at`

	rows, err := s.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("error querying provisional uploads: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(
			&entry.Bucket,
			&entry.FilePath,
			&entry.FileName,
			&entry.MimeType,
			&entry.SizeBytes,
			&entry.PageCount,
			&entry.Status,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning provisional upload: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provisional uploads: %w", err)
	}

	return entries, nil
}

func (s *sqlProvisionalUploadRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrProvisionalUploadNotFound
	}

	return nil
}
