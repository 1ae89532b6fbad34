package cache

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/face"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/observability"
	"github.com/matzehuels/whisker/pkg/raster"
)

// Option configures a Store.
type Option func(*Store)

// WithSize sets the slot count. Zero disables caching.
func WithSize(n int) Option {
	return func(s *Store) { s.size = n }
}

// WithSlots replaces the slot policy. It takes precedence over WithSize.
func WithSlots(slots Slots[*Entry]) Option {
	return func(s *Store) { s.slots = slots }
}

// WithRasterizer sets the rasterizer used on misses (default raster.Engine).
func WithRasterizer(r raster.Rasterizer) Option {
	return func(s *Store) { s.rasterizer = r }
}

// WithDocuments sets the materialized documents (default face.NewDocuments).
func WithDocuments(d *face.Documents) Option {
	return func(s *Store) { s.docs = d }
}

// WithLogger sets the logger used to report skipped frames.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store is the rasterization cache. See the package documentation.
type Store struct {
	size       int
	slots      Slots[*Entry]
	rasterizer raster.Rasterizer
	docs       *face.Documents
	logger     *log.Logger
	stats      Stats
}

// NewStore creates a store with DefaultSize ring slots unless configured
// otherwise.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{size: DefaultSize}
	for _, opt := range opts {
		opt(s)
	}

	if s.slots == nil {
		if err := errors.ValidateCacheSize(s.size); err != nil {
			return nil, err
		}
		if s.size == 0 {
			s.slots = Null[*Entry]{}
		} else {
			s.slots = NewRing[*Entry](s.size)
		}
	}
	if s.rasterizer == nil {
		s.rasterizer = raster.Engine{}
	}
	if s.docs == nil {
		s.docs = face.NewDocuments()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s, nil
}

// Get returns the entry for (expr, viewport), rasterizing on a miss.
// It returns false when rasterization fails; nothing is cached in that
// case and the caller should skip drawing for this frame.
func (s *Store) Get(expr face.Expression, viewport grid.Rect) (*Entry, bool) {
	entry, _, err := s.Fetch(expr, viewport)
	if err != nil {
		logf := s.logger.Error
		if errors.Recoverable(err) {
			logf = s.logger.Warn
		}
		logf("skipping face render",
			"expression", expr,
			"viewport", viewport,
			"err", errors.UserMessage(err))
		return nil, false
	}
	return entry, true
}

// Fetch is Get with the hit flag and the rasterization error surfaced.
func (s *Store) Fetch(expr face.Expression, viewport grid.Rect) (*Entry, bool, error) {
	key := Key{Expression: expr, Viewport: viewport}

	if e, ok := s.slots.Find(func(e *Entry) bool { return e.Key() == key }); ok {
		s.stats.Hits++
		observability.Cache().OnCacheHit(key.String())
		return e, true, nil
	}
	s.stats.Misses++
	observability.Cache().OnCacheMiss(key.String())

	width, height := viewport.Width, 2*viewport.Height
	start := time.Now()
	pix, err := s.rasterizer.Rasterize(s.docs.Get(expr), width, height)
	elapsed := time.Since(start)
	observability.Render().OnRasterize(width, height, elapsed, err)
	if err != nil {
		s.stats.Failures++
		return nil, false, err
	}
	s.logger.Debug("rasterized face", "key", key, "pixels", pix.Len(), "duration", elapsed)

	entry := &Entry{Pixmap: pix, Viewport: viewport, Expression: expr}
	slot, old, evicted := s.slots.Insert(entry)
	var evictedKey string
	if evicted {
		s.stats.Evictions++
		evictedKey = old.Key().String()
	}
	observability.Cache().OnCacheInsert(key.String(), slot, evictedKey)
	return entry, false, nil
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	st := s.stats
	st.Resident = s.slots.Len()
	st.Capacity = s.slots.Cap()
	return st
}

// Documents returns the documents the store rasterizes from.
func (s *Store) Documents() *face.Documents { return s.docs }

// Reset drops every cached entry. Counters are kept.
func (s *Store) Reset() { s.slots.Reset() }

var _ Fetcher = (*Store)(nil)
