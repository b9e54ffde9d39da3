package host

// State tracks whether a layout's cache can answer queries.
type State uint8

const (
	Unprepared  State = iota // No cache, or the cache was dropped
	Prepared                 // Cache valid for the current data and bounds
	Invalidated              // Cache stale; the next Prepare rebuilds it
)

func (s State) String() string {
	switch s {
	case Unprepared:
		return "unprepared"
	case Prepared:
		return "prepared"
	case Invalidated:
		return "invalidated"
	}
	return "unknown"
}

// Invalidation says what changed since the last prepare. Kinds combine with |.
type Invalidation uint8

const (
	InvalidateData   Invalidation = 1 << iota // Sections or items changed
	InvalidateBounds                          // Viewport moved or resized
	InvalidateAll    = InvalidateData | InvalidateBounds
)

// Has reports whether all bits of k are set in i.
func (i Invalidation) Has(k Invalidation) bool {
	return i&k == k
}

func (i Invalidation) String() string {
	switch i {
	case InvalidateData:
		return "data"
	case InvalidateBounds:
		return "bounds"
	case InvalidateAll:
		return "all"
	}
	return "none"
}
