package metadata

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateDocument persists a document, its tags and attaches its provisional upload in one transaction
func (m *metadataService) CreateDocument(ctx context.Context, fields domain.DocumentFields) (*domain.Document, error) {
	doc := domain.Document{
		ID:              uuid.New(),
		Title:           fields.Title,
		Type:            fields.Type,
		Subject:         fields.Subject,
		School:          fields.School,
		Description:     fields.Description,
		Tags:            normalizeTags(fields.Tags),
		DownloadEnabled: fields.DownloadEnabled,
		SourceKind:      fields.Source.Kind,
		StorageRef:      fields.Source.Ref,
		StorageBucket:   fields.Source.Bucket,
		MimeType:        fields.Source.MimeType,
		SizeBytes:       fields.Source.SizeBytes,
	}
	if fields.Source.Video != nil {
		doc.DurationSeconds = fields.Source.Video.DurationSeconds
		doc.ThumbnailURL = fields.Source.Video.ThumbnailURL
	}

	slot := domain.UploadSlot{Bucket: fields.Source.Bucket, FilePath: fields.Source.Ref}
	uploaded := fields.Source.Kind == domain.SourceKindUploadedFile

	txErr := m.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		if uploaded {
			entry, err := uow.ProvisionalUploadRepo().FindBySlot(ctx, slot)
			if errors.Is(err, domain.ErrProvisionalUploadNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrUploadMissing, slot.FilePath)
			}
			if err != nil {
				return err
			}
			doc.PageCount = entry.PageCount
			if entry.SizeBytes > 0 {
				doc.SizeBytes = entry.SizeBytes
			}
		}

		if err := uow.DocumentRepo().Create(ctx, doc); err != nil {
			return err
		}

		if err := m.linkTags(ctx, uow, doc.ID, doc.Tags); err != nil {
			return err
		}

		if uploaded {
			err := uow.ProvisionalUploadRepo().MarkAttached(ctx, slot)
			if errors.Is(err, domain.ErrProvisionalUploadNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrUploadMissing, slot.FilePath)
			}
			if err != nil {
				return err
			}
		}

		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("could not create document: %w", txErr)
	}

	m.logger.Info("document created", "documentID", doc.ID, "sourceKind", doc.SourceKind, "fileKey", doc.StorageRef)
	return &doc, nil
}

func (m *metadataService) linkTags(ctx context.Context, uow port.UnitOfWork, documentID uuid.UUID, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	if _, err := uow.TagRepo().CreateMany(ctx, tags); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}

	found, err := uow.TagRepo().FindByNames(ctx, tags)
	if err != nil {
		return err
	}

	var notFoundTags []string
	tagIDs := make([]uuid.UUID, 0, len(found))
	for _, tag := range tags {
		id, ok := found[tag]
		if !ok {
			notFoundTags = append(notFoundTags, tag)
			continue
		}
		tagIDs = append(tagIDs, id)
	}
	if len(notFoundTags) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrTagNotFound, notFoundTags)
	}

	_, err = uow.DocumentTagRepo().CreateMany(ctx, documentID, tagIDs)
	return err
}
