package cache

// Slots is a fixed set of cache slots with a replacement policy.
type Slots[T any] interface {
	// Find returns the first resident value for which match is true.
	Find(match func(T) bool) (T, bool)

	// Insert stores v and reports the slot written. When the slot held a
	// value, it is returned as old with evicted set.
	Insert(v T) (slot int, old T, evicted bool)

	// Len returns the number of resident values.
	Len() int

	// Cap returns the number of slots.
	Cap() int

	// Reset drops every resident value.
	Reset()
}

// Ring is a fixed-capacity ring of slots. Inserts always write the slot
// under the cursor and advance it, wrapping at the end, so the oldest write
// is replaced first. Reads do not affect replacement order.
type Ring[T any] struct {
	slots  []T
	used   []bool
	cursor int
	n      int
}

// NewRing returns a ring with capacity slots. It panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic("cache: ring capacity must be positive")
	}
	return &Ring[T]{
		slots: make([]T, capacity),
		used:  make([]bool, capacity),
	}
}

// Find scans slots in index order.
func (r *Ring[T]) Find(match func(T) bool) (T, bool) {
	for i, v := range r.slots {
		if r.used[i] && match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Insert writes v at the cursor and advances it.
func (r *Ring[T]) Insert(v T) (slot int, old T, evicted bool) {
	slot = r.cursor
	if r.used[slot] {
		old, evicted = r.slots[slot], true
	} else {
		r.n++
	}
	r.slots[slot] = v
	r.used[slot] = true
	r.cursor = (r.cursor + 1) % len(r.slots)
	return slot, old, evicted
}

// Cursor returns the slot the next insert will write.
func (r *Ring[T]) Cursor() int { return r.cursor }

// Len returns the number of occupied slots.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the number of slots.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// Reset empties every slot and rewinds the cursor.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.slots {
		r.slots[i] = zero
		r.used[i] = false
	}
	r.cursor, r.n = 0, 0
}

var _ Slots[int] = (*Ring[int])(nil)
