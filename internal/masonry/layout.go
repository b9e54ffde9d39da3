// Package masonry implements the masonry layout: equal-width columns filled
// greedily, each item going to the column with the least speed-adjusted
// height.
//
// Columns may scroll at different speeds. Placement happens once per
// prepare; the per-column offset for the current scroll position is applied
// when the layout is queried, so scrolling never re-runs the balancer.
package masonry

import (
	"github.com/go-logr/logr"
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/generation"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host"
)

// Layout is a masonry layout attached to one host.
type Layout struct {
	host  host.Host
	cfg   Config
	log   logr.Logger
	store *generation.Store[Columns]
	state host.State

	// changingBounds is set by a bounds-only invalidation. The next Prepare
	// keeps the placed columns unless the viewport width changed.
	changingBounds bool
	dataChanged    bool
}

// New creates an unprepared masonry layout. cfg must be valid.
func New(h host.Host, cfg Config, log logr.Logger) *Layout {
	return &Layout{
		host:  h,
		cfg:   cfg,
		log:   log.WithName("masonry"),
		store: generation.NewStore[Columns](cfg.RetainPrevious),
		state: host.Unprepared,
	}
}

// Config returns the layout's configuration.
func (l *Layout) Config() Config {
	return l.cfg
}

// State returns where the layout is in its prepare cycle.
func (l *Layout) State() host.State {
	return l.state
}

// Generation returns how many placements have been published.
func (l *Layout) Generation() uint64 {
	return l.store.Number()
}

// ChangingBounds reports whether a bounds-only invalidation is pending.
func (l *Layout) ChangingBounds() bool {
	return l.changingBounds
}

// Invalidate marks the layout stale.
func (l *Layout) Invalidate(kind host.Invalidation) {
	if l.state == host.Unprepared {
		return
	}
	if kind.Has(host.InvalidateBounds) {
		l.changingBounds = true
	}
	if kind.Has(host.InvalidateData) {
		l.dataChanged = true
	}
	l.log.V(2).Info("invalidated", "kind", kind.String())
	l.state = host.Invalidated
}

// Prepare places every item if the cache is stale. A pending bounds change
// that kept the viewport width skips placement. It panics if the host does
// not provide item heights, or if called from inside a query scope.
func (l *Layout) Prepare() {
	if l.state == host.Prepared {
		return
	}
	heights, ok := l.host.(host.HeightProvider)
	if !ok {
		panic(xerrors.Errorf("masonry: %T: %w", l.host, host.ErrMissingHeightProvider))
	}

	end := l.store.BeginPrepare()
	defer end()

	viewport := l.host.Frame().Size()
	if c := l.store.Latest(); c != nil && !l.dataChanged && c.Width == viewport.Width {
		l.log.V(2).Info("bounds changed, keeping columns")
		l.finish()
		return
	}

	c := Place(l.host, heights, l.cfg, viewport)
	l.store.Publish(c)
	l.finish()

	if l.log.V(1).Enabled() {
		l.log.V(1).Info("prepared",
			"generation", l.store.Number(),
			"columns", c.Metrics.Count,
			"columnWidth", c.Metrics.Width,
			"items", host.CountItems(l.host),
			"contentSize", c.ContentSize(viewport))
	}
}

func (l *Layout) finish() {
	l.changingBounds = false
	l.dataChanged = false
	l.state = host.Prepared
}

func (l *Layout) scrollY() float64 {
	return l.host.ScrollOffset().Y
}

// Columns returns the placement queries currently read, or nil.
func (l *Layout) Columns() *Columns {
	return l.store.Current()
}

// ContentSize returns the scrollable size of the content.
func (l *Layout) ContentSize() geom.Size {
	c := l.store.Current()
	if c == nil {
		return geom.Size{}
	}
	return c.ContentSize(l.host.Frame().Size())
}

// AttributesInRect returns copies of the attributes of every item visible in
// r at the current scroll offset.
func (l *Layout) AttributesInRect(r geom.Rect) []*attr.Attributes {
	c := l.store.Current()
	if c == nil {
		return nil
	}
	return Query(c, l.scrollY(), r)
}

// AttributesForItem returns a copy of p's attributes at the current scroll
// offset.
func (l *Layout) AttributesForItem(p attr.IndexPath) (*attr.Attributes, bool) {
	c := l.store.Current()
	if c == nil {
		return nil, false
	}
	return Item(c, l.scrollY(), p)
}

// AttributesForSupplementary always reports false: masonry sections have no
// headers or footers.
func (l *Layout) AttributesForSupplementary(int, attr.Kind) (*attr.Attributes, bool) {
	return nil, false
}

// IndexPathInDirection returns the item next to p in direction d.
func (l *Layout) IndexPathInDirection(p attr.IndexPath, d attr.Direction) (attr.IndexPath, bool) {
	c := l.store.Current()
	if c == nil {
		return p, false
	}
	return Neighbor(c, l.scrollY(), p, d)
}

// IndexPathsBetween returns all index paths from a to b inclusive.
func (l *Layout) IndexPathsBetween(a, b attr.IndexPath) []attr.IndexPath {
	c := l.store.Current()
	if c == nil {
		return nil
	}
	return Between(c, a, b)
}

// UsePrevious runs fn with every query answering from the placement before
// the latest one.
func (l *Layout) UsePrevious(fn func()) {
	l.store.UsePrevious(fn)
}

// DiscardPrevious releases the retained placement.
func (l *Layout) DiscardPrevious() {
	l.store.DiscardPrevious()
}
