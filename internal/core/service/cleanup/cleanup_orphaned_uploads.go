package cleanup

import (
	"context"
	"doclib/internal/core/domain"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// CleanupOrphanedUploads deletes the objects of provisional uploads untouched since `before` and never attached
// to a document, then forgets them. Uploads still owned by an open import are renewed first and never swept.
// Failures are logged and retried on the next run.
func (c *cleanupService) CleanupOrphanedUploads(ctx context.Context, before time.Time) error {
	if c.leases != nil {
		if err := c.leases.RenewLeases(ctx); err != nil {
			return fmt.Errorf("could not renew live uploads, sweep skipped: %w", err)
		}
	}

	entries, err := c.uow.ProvisionalUploadRepo().FindUnattached(ctx, before)
	if err != nil {
		return err
	}

	var deleted atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.cfg.CleanupConcurrency, 1))

	for _, entry := range entries {
		entry := entry
		g.Go(func() error {
			slot := entry.Slot()

			if err := c.objectStore.Delete(gctx, slot); err != nil {
				c.logger.Error("Failed to delete orphaned upload", "fileKey", slot.FilePath, "err", err)
				return nil
			}

			err := c.uow.ProvisionalUploadRepo().Delete(gctx, slot)
			if err != nil && !errors.Is(err, domain.ErrProvisionalUploadNotFound) {
				c.logger.Error("Failed to delete provisional upload entry", "fileKey", slot.FilePath, "err", err)
				return nil
			}

			deleted.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	c.logger.Info("orphaned uploads cleanup completed", "found", len(entries), "deleted", deleted.Load())
	return nil
}
