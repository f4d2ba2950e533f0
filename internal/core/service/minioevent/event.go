package minioevent

import (
	"doclib/internal/core/port"
	"log/slog"
)

type minioEventService struct {
	reader port.ObjectReader
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewMinioEventService creates a new Minio event handler keeping the provisional upload ledger in sync with the bucket
func NewMinioEventService(reader port.ObjectReader, uow port.UnitOfWork, logger *slog.Logger) port.MessageService {
	return &minioEventService{
		reader: reader,
		uow:    uow,
		logger: logger,
	}
}
