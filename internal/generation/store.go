// Package generation publishes layout caches as atomic snapshots.
//
// A prepare pass builds a fresh cache and publishes it; it never mutates a
// published cache. While an animated transition runs, the store can keep
// the previous snapshot so queries about the old data set still answer
// against the geometry the items had before the change.
package generation

// Store holds the current cache generation and, optionally, the one before it.
type Store[T any] struct {
	current   *T
	previous  *T
	number    uint64
	retain    bool
	usePrev   int // UsePrevious nesting depth
	preparing bool
}

// NewStore returns an empty store. When retain is true, publishing a new
// generation keeps the old one available through UsePrevious.
func NewStore[T any](retain bool) *Store[T] {
	return &Store[T]{retain: retain}
}

// Publish swaps in a new generation.
func (s *Store[T]) Publish(next *T) {
	if s.retain && s.current != nil {
		s.previous = s.current
	}
	s.current = next
	s.number++
}

// Current returns the generation queries should read: the previous one inside
// UsePrevious (falling back to the current one when nothing was retained),
// otherwise the latest. It returns nil before the first Publish.
func (s *Store[T]) Current() *T {
	if s.usePrev > 0 && s.previous != nil {
		return s.previous
	}
	return s.current
}

// Latest returns the most recently published generation regardless of scope.
func (s *Store[T]) Latest() *T {
	return s.current
}

// Previous returns the retained generation, or nil.
func (s *Store[T]) Previous() *T {
	return s.previous
}

// Number returns how many generations have been published.
func (s *Store[T]) Number() uint64 {
	return s.number
}

// UsePrevious runs fn with Current answering from the previous generation.
// Calls may nest; the scope is restored when fn returns or panics.
func (s *Store[T]) UsePrevious(fn func()) {
	s.usePrev++
	defer func() { s.usePrev-- }()
	fn()
}

// InPreviousScope reports whether a UsePrevious callback is running.
func (s *Store[T]) InPreviousScope() bool {
	return s.usePrev > 0
}

// DiscardPrevious drops the retained generation once a transition ends.
func (s *Store[T]) DiscardPrevious() {
	s.previous = nil
}

// BeginPrepare marks the start of a prepare pass. It panics when a prepare is
// already running or when called from inside a UsePrevious query scope, both
// of which mean the host sequenced invalidate, prepare and query incorrectly.
// The returned function ends the pass.
func (s *Store[T]) BeginPrepare() (end func()) {
	if s.preparing {
		panic("generation: prepare called recursively")
	}
	if s.usePrev > 0 {
		panic("generation: prepare called from inside a UsePrevious query")
	}
	s.preparing = true
	return func() { s.preparing = false }
}
