package favorite

import (
	"context"
	"doclib/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// Toggle flips the local flag of a document immediately and schedules the write once toggles on
// that document have been quiet for the debounce window. It returns the new local value.
func (s *Sync) Toggle(id uuid.UUID, current bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, domain.ErrViewClosed
	}
	if _, ok := s.docs[id]; !ok {
		return false, domain.ErrDocumentNotFound
	}

	target := !current
	s.setLocal(id, target)

	op, ok := s.pending[id]
	if ok {
		op.timer.Stop()
		op.TargetValue = target
	} else {
		op = &pendingOp{FavoritePendingOp: domain.FavoritePendingOp{TargetValue: target, OriginalValue: current}}
		s.pending[id] = op
	}
	op.seq++
	seq := op.seq
	op.timer = time.AfterFunc(s.cfg.DebounceWindow, func() { s.flush(id, seq) })

	return target, nil
}

// flush writes the pending op of id if seq is still its latest toggle
func (s *Sync) flush(id uuid.UUID, seq uint64) {
	s.mu.Lock()
	for {
		op, ok := s.pending[id]
		if s.closed || !ok || op.seq != seq {
			s.mu.Unlock()
			return
		}
		previous, busy := s.inflight[id]
		if !busy {
			break
		}
		s.mu.Unlock()
		<-previous.done
		s.mu.Lock()
	}

	op := s.pending[id]
	delete(s.pending, id)
	write := &inflightWrite{target: op.TargetValue, done: make(chan struct{})}
	s.inflight[id] = write
	s.writes.Add(1)
	s.mu.Unlock()

	defer s.writes.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
	defer cancel()

	err := s.metadata.SetFavorite(ctx, id, op.TargetValue)

	var favorites []domain.Document
	var fetchErr error
	if err == nil {
		favorites, fetchErr = s.metadata.FetchFavorites(ctx, s.school)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, id)
	close(write.done)

	if err != nil {
		s.rollback(id, op, err)
		return
	}

	s.logger.Debug("favorite saved", "documentID", id.String(), "value", op.TargetValue)
	if fetchErr != nil {
		s.logger.Warn("could not refresh favorites", "error", fetchErr)
		return
	}
	s.refresh(favorites)
}

// rollback restores the value seen before the burst. A newer burst on the same document keeps its
// local value and inherits the original so its own failure still restores server truth.
func (s *Sync) rollback(id uuid.UUID, op *pendingOp, err error) {
	s.logger.Error("favorite write failed", "documentID", id.String(), "value", op.TargetValue, "error", err)
	s.errs = append(s.errs, &domain.FavoriteWriteError{DocumentID: id, Value: op.TargetValue, Err: err})

	if newer, ok := s.pending[id]; ok {
		newer.OriginalValue = op.OriginalValue
		return
	}
	s.setLocal(id, op.OriginalValue)
}
