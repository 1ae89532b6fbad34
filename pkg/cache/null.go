package cache

// Null is a Slots implementation that never retains anything.
// Useful for testing or when caching should be disabled.
type Null[T any] struct{}

// Find always misses.
func (Null[T]) Find(func(T) bool) (T, bool) {
	var zero T
	return zero, false
}

// Insert discards v.
func (Null[T]) Insert(T) (int, T, bool) {
	var zero T
	return -1, zero, false
}

// Len is always zero.
func (Null[T]) Len() int { return 0 }

// Cap is always zero.
func (Null[T]) Cap() int { return 0 }

// Reset does nothing.
func (Null[T]) Reset() {}

var _ Slots[int] = Null[int]{}
