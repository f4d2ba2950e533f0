package port

import (
	"context"
	"time"
)

// CleanupService is service that removes orphaned provisional uploads
type CleanupService interface {
	CleanupOrphanedUploads(ctx context.Context, before time.Time) error
}

// UploadLeases renews the ledger entries of uploads that live imports still own
type UploadLeases interface {
	RenewLeases(ctx context.Context) error
}
