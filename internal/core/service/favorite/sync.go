package favorite

import (
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type pendingOp struct {
	domain.FavoritePendingOp
	timer *time.Timer
	seq   uint64
}

type inflightWrite struct {
	target bool
	done   chan struct{}
}

// Sync keeps the favorite flags of one view optimistic and writes them back, coalesced per document
type Sync struct {
	id       uuid.UUID
	metadata port.MetadataService
	school   *string
	cfg      config.FavoriteConfig
	logger   *slog.Logger

	mu       sync.Mutex
	docs     map[uuid.UUID]domain.Document
	display  []domain.Document
	pending  map[uuid.UUID]*pendingOp
	inflight map[uuid.UUID]*inflightWrite
	errs     []error
	closed   bool
	writes   sync.WaitGroup
}

// NewSync returns an empty Sync for the favorites of school, or of every school when school is nil
func NewSync(metadata port.MetadataService, school *string, cfg config.FavoriteConfig, logger *slog.Logger) *Sync {
	id := uuid.New()
	return &Sync{
		id:       id,
		metadata: metadata,
		school:   school,
		cfg:      cfg,
		logger:   logger.With("viewID", id.String()),
		docs:     make(map[uuid.UUID]domain.Document),
		pending:  make(map[uuid.UUID]*pendingOp),
		inflight: make(map[uuid.UUID]*inflightWrite),
	}
}

func (s *Sync) ID() uuid.UUID {
	return s.id
}

// Track makes documents known to the view. Documents with an unsent or in-flight change keep their local flag.
func (s *Sync) Track(docs ...domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		s.track(doc)
	}
}

func (s *Sync) track(doc domain.Document) {
	if local, ok := s.localTarget(doc.ID); ok {
		doc.IsFavorite = local
	}
	s.docs[doc.ID] = doc
}

func (s *Sync) localTarget(id uuid.UUID) (bool, bool) {
	if op, ok := s.pending[id]; ok {
		return op.TargetValue, true
	}
	if write, ok := s.inflight[id]; ok {
		return write.target, true
	}
	return false, false
}

func (s *Sync) Knows(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[id]
	return ok
}

// IsFavorite returns the local flag of a document and whether the document is known
func (s *Sync) IsFavorite(id uuid.UUID) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	return doc.IsFavorite, ok
}

// Favorites returns the capped display collection, most recent first
func (s *Sync) Favorites() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Document(nil), s.display...)
}

// DrainErrors returns and forgets the write errors queued since the last call
func (s *Sync) DrainErrors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := s.errs
	s.errs = nil
	return errs
}

// Close drops unsent changes without writing them and waits for in-flight writes
func (s *Sync) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, op := range s.pending {
		op.timer.Stop()
		delete(s.pending, id)
	}
	s.mu.Unlock()

	s.writes.Wait()
}

// setLocal updates the flag of a known document and its place in the display collection
func (s *Sync) setLocal(id uuid.UUID, value bool) {
	doc, ok := s.docs[id]
	if !ok {
		return
	}
	doc.IsFavorite = value
	s.docs[id] = doc

	s.display = removeDocument(s.display, id)
	if value {
		s.display = append([]domain.Document{doc}, s.display...)
	}
	if len(s.display) > s.cfg.DisplayLimit {
		s.display = s.display[:s.cfg.DisplayLimit]
	}
}

// refresh replaces the display collection with server truth and re-applies the local changes not yet confirmed
func (s *Sync) refresh(favorites []domain.Document) {
	s.display = s.display[:0]
	for _, doc := range favorites {
		if len(s.display) == s.cfg.DisplayLimit {
			break
		}
		s.track(doc)
		s.display = append(s.display, s.docs[doc.ID])
	}

	for id, op := range s.pending {
		s.setLocal(id, op.TargetValue)
	}
	for id, write := range s.inflight {
		s.setLocal(id, write.target)
	}
}

func removeDocument(docs []domain.Document, id uuid.UUID) []domain.Document {
	kept := docs[:0]
	for _, doc := range docs {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	return kept
}
