package cache

import (
	"sync"

	"github.com/matzehuels/whisker/pkg/face"
	"github.com/matzehuels/whisker/pkg/grid"
)

// Synchronized serializes access to a Store. Inserts overwrite shared
// slots, so concurrent callers must not reach a Store directly.
type Synchronized struct {
	mu    sync.Mutex
	store *Store
}

// NewSynchronized wraps s.
func NewSynchronized(s *Store) *Synchronized {
	return &Synchronized{store: s}
}

// Get implements Getter.
func (s *Synchronized) Get(expr face.Expression, viewport grid.Rect) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(expr, viewport)
}

// Fetch implements Fetcher.
func (s *Synchronized) Fetch(expr face.Expression, viewport grid.Rect) (*Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Fetch(expr, viewport)
}

// Stats returns the wrapped store's counters.
func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Stats()
}

// Documents returns the wrapped store's documents. They are read-only and
// need no locking.
func (s *Synchronized) Documents() *face.Documents { return s.store.Documents() }

var _ Fetcher = (*Synchronized)(nil)
