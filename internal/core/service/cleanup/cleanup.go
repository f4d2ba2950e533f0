package cleanup

import (
	"doclib/internal/config"
	"doclib/internal/core/port"
	"log/slog"
)

type cleanupService struct {
	uow         port.UnitOfWork
	objectStore port.ObjectStore
	leases      port.UploadLeases
	cfg         config.UploadConfig
	logger      *slog.Logger
}

// NewCleanupService creates a new cleanup service. leases may be nil when no import runs in the process.
func NewCleanupService(uow port.UnitOfWork, objectStore port.ObjectStore, leases port.UploadLeases, cfg config.UploadConfig, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:         uow,
		objectStore: objectStore,
		leases:      leases,
		cfg:         cfg,
		logger:      logger,
	}
}
