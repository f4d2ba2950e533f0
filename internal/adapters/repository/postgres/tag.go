package postgres

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type sqlTagRepository struct {
	db SQLQuerier
}

// NewSqlTagRepository creates sqlTagRepository that implements port.TagRepository
func NewSqlTagRepository(db SQLQuerier) port.TagRepository {
	return &sqlTagRepository{
		db: db,
	}
}

// CreateMany creates multiple tags, tags are stored upper-cased
func (s *sqlTagRepository) CreateMany(ctx context.Context, tags []string) (int, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	uniqueTags := make(map[string]bool)
	for _, tag := range tags {
		uniqueTags[strings.ToUpper(tag)] = true
	}

	tagsList := make([]string, 0, len(uniqueTags))
	for tag := range uniqueTags {
		tagsList = append(tagsList, tag)
	}

	placeholders := make([]string, len(tagsList))
	args := make([]any, len(tagsList))
	for i, tag := range tagsList {
		placeholders[i] = fmt.Sprintf("(UPPER($%d))", i+1)
		args[i] = tag
	}

	query := fmt.Sprintf(
		"INSERT INTO tags (name) VALUES %s ON CONFLICT DO NOTHING",
		strings.Join(placeholders, ", "),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		return 0, domain.ErrAlreadyExists
	}

	return int(rowsAffected), nil
}

// FindByNames retrieves multiple tags by their names in a single query
func (s *sqlTagRepository) FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	if len(names) == 0 {
		return make(map[string]uuid.UUID), nil
	}

	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = strings.ToUpper(name)
	}

	query := fmt.Sprintf(
		"SELECT id, name FROM tags WHERE name IN (%s)",
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	result := make(map[string]uuid.UUID)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		result[name] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

// FindByIDs retrieves multiple tags by their ids in a single query
func (s *sqlTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT id, name, created_at FROM tags WHERE id IN (%s) ORDER BY name",
		strings.Join(placeholders, ", "),
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	var result []domain.Tag
	for rows.Next() {
		var tagDB dbTag
		if err := rows.Scan(&tagDB.ID, &tagDB.Name, &tagDB.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		result = append(result, *tagDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return result, nil
}

type dbTag struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ToDomain converts to domain.Tag
func (t *dbTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
