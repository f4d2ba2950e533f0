package postgres

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type sqlDocumentTagRepository struct {
	db SQLQuerier
}

// NewDocumentTagRepository creates sqlDocumentTagRepository
func NewDocumentTagRepository(db SQLQuerier) port.DocumentTagRepository {
	return &sqlDocumentTagRepository{db: db}
}

// CreateMany creates multiple document-tag associations in batch
func (s *sqlDocumentTagRepository) CreateMany(ctx context.Context, documentID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	seen := make(map[uuid.UUID]bool)
	placeholders := make([]string, 0, len(tagIDs))
	args := make([]any, 0, len(tagIDs)*2)
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, documentID, tagID)
	}

	query := fmt.Sprintf(
		"INSERT INTO document_tags (document_id, tag_id) VALUES %s ON CONFLICT (document_id, tag_id) DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error inserting document tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// FindByDocumentID finds all tag links of a document
func (s *sqlDocumentTagRepository) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentTag, error) {
	query := `SELECT document_id, tag_id FROM document_tags WHERE document_id = $1`

	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("error querying document tags: %w", err)
	}
	defer rows.Close()

	var links []domain.DocumentTag
	for rows.Next() {
		var link domain.DocumentTag
		if err := rows.Scan(&link.DocumentID, &link.TagID); err != nil {
			return nil, fmt.Errorf("error scanning document tag: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document tags: %w", err)
	}

	return links, nil
}
