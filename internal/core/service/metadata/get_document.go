package metadata

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/google/uuid"
)

// GetDocument returns a document with its tag names
func (m *metadataService) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := m.uow.DocumentRepo().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	links, err := m.uow.DocumentTagRepo().FindByDocumentID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return doc, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		tagIDs = append(tagIDs, link.TagID)
	}

	tags, err := m.uow.TagRepo().FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		doc.Tags = append(doc.Tags, tag.Name)
	}

	return doc, nil
}
