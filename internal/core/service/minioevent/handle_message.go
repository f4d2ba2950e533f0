package minioevent

import (
	"context"
	"doclib/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func (m *minioEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.MinIOEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: could not unmarshal minioevent: %v", domain.ErrInvalidEvent, err)
	}
	if len(event.Records) == 0 {
		return fmt.Errorf("%w: no records in minioevent", domain.ErrInvalidEvent)
	}

	for _, record := range event.Records {
		decodedKey, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidEvent, err)
		}
		slot := domain.UploadSlot{Bucket: record.S3.Bucket.Name, FilePath: decodedKey}
		eventType := eventTypeOf(record.EventName)

		m.logger.Info("handling event ", "eventtype", record.EventName, "key", decodedKey)

		switch eventType {
		case domain.EventTypeObjectCreated:
			pageCount := m.countPages(ctx, slot, record.S3.Object.ContentType)
			err = m.uow.ProvisionalUploadRepo().MarkStored(ctx, slot, record.S3.Object.Size, pageCount)
		case domain.EventTypeObjectRemoved:
			err = m.uow.ProvisionalUploadRepo().Delete(ctx, slot)
		default:
			continue
		}

		if errors.Is(err, domain.ErrProvisionalUploadNotFound) {
			m.logger.Debug("object is not a provisional upload", "key", decodedKey)
			continue
		}
		if err != nil {
			return fmt.Errorf("could not sync %s: %w", decodedKey, err)
		}
	}
	return nil
}

func eventTypeOf(eventName string) domain.EventType {
	switch {
	case strings.HasPrefix(eventName, "s3:ObjectCreated:"):
		return domain.EventTypeObjectCreated
	case strings.HasPrefix(eventName, "s3:ObjectRemoved:"):
		return domain.EventTypeObjectRemoved
	default:
		return domain.EventTypeUnknown
	}
}

// countPages returns the page count of a stored pdf, 0 for any other object or when it cannot be read
func (m *minioEventService) countPages(ctx context.Context, slot domain.UploadSlot, contentType string) int {
	if contentType != "application/pdf" && strings.ToLower(filepath.Ext(slot.FilePath)) != ".pdf" {
		return 0
	}

	object, err := m.reader.Open(ctx, slot)
	if err != nil {
		m.logger.Warn("could not open pdf", "key", slot.FilePath, "error", err)
		return 0
	}
	defer object.Close()

	pageCount, err := api.PageCount(object, model.NewDefaultConfiguration())
	if err != nil {
		m.logger.Warn("failed to read PDF page count", "key", slot.FilePath, "error", err)
		return 0
	}
	return pageCount
}
