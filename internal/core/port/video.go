package port

import (
	"context"
	"doclib/internal/core/domain"
)

// VideoResolver resolves third party video urls into metadata
type VideoResolver interface {
	Resolve(ctx context.Context, url string) (*domain.VideoMetadata, error)
}
