package metadata

import (
	"doclib/internal/config"
	"doclib/internal/core/port"
	"log/slog"
	"strings"
)

type metadataService struct {
	uow    port.UnitOfWork
	cfg    config.FavoriteConfig
	logger *slog.Logger
}

// NewMetadataService creates a new metadata service
func NewMetadataService(uow port.UnitOfWork, cfg config.FavoriteConfig, logger *slog.Logger) port.MetadataService {
	return &metadataService{uow: uow, cfg: cfg, logger: logger}
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
