// Package cache keeps recently rasterized face pixmaps so the render loop
// does not rasterize the same face at the same size every frame.
//
// # Overview
//
// A [Store] maps (expression, viewport) pairs to [Entry] values. Lookups
// scan a handful of slots linearly; on a miss the store fetches the
// expression's document, rasterizes it at viewport.Width × 2·viewport.Height
// pixels and writes the result into the slot under its write cursor:
//
//	store, err := cache.NewStore(cache.WithLogger(logger))
//	entry, ok := store.Get(face.Neutral, grid.NewRect(40, 20))
//	if !ok {
//	    // rasterization failed; skip this frame
//	}
//
// # Replacement
//
// Slots are managed by a [Slots] implementation. The default [Ring] evicts
// the oldest write regardless of how recently an entry was read. [Null]
// disables caching. Other policies can be plugged in with [WithSlots]
// without touching callers.
//
// # Sharing
//
// Entries are immutable. Overwriting a slot only drops the store's claim on
// the old entry; holders that already received it keep a valid pixmap
// until they release it.
//
// A Store is not safe for concurrent use. Wrap it in [Synchronized] when
// more than one goroutine renders.
package cache

import (
	"fmt"

	"github.com/matzehuels/whisker/pkg/face"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/raster"
)

// DefaultSize is the number of slots in a default store. It comfortably
// exceeds the one expression and one viewport live in a normal session, so
// a burst of resize events does not thrash.
const DefaultSize = 5

// Key identifies a rasterization.
type Key struct {
	Expression face.Expression
	Viewport   grid.Rect
}

func (k Key) String() string {
	return fmt.Sprintf("%s@%s", k.Expression, k.Viewport)
}

// Entry is one rasterized face. The pixmap is Viewport.Width pixels wide
// and 2·Viewport.Height pixels tall.
type Entry struct {
	Pixmap     *raster.Pixmap
	Viewport   grid.Rect
	Expression face.Expression
}

// Key returns the key the entry was produced for.
func (e *Entry) Key() Key {
	return Key{Expression: e.Expression, Viewport: e.Viewport}
}

// Getter returns a pixmap for an expression at a viewport, or false when
// none could be produced.
type Getter interface {
	Get(expr face.Expression, viewport grid.Rect) (*Entry, bool)
}

// Fetcher is a Getter that also reports cache hits and failures.
type Fetcher interface {
	Getter
	Fetch(expr face.Expression, viewport grid.Rect) (entry *Entry, hit bool, err error)
}

// Stats counts store activity.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Failures  uint64
	Evictions uint64
	Resident  int
	Capacity  int
}
