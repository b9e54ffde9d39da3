// Package tile implements the tile layout: a rectangle packer that places
// items of arbitrary size into sections, first-fit, top-left first.
//
// Prepare packs every section once per invalidation and publishes the result
// as an immutable Cache. Queries read the published cache and apply header
// and footer pinning for the current scroll offset without re-packing.
package tile

import (
	"github.com/go-logr/logr"
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/generation"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host"
)

// Layout is a tile layout attached to one host.
type Layout struct {
	host  host.Host
	cfg   Config
	log   logr.Logger
	store *generation.Store[Cache]
	state host.State

	preparedWidth float64 // Cross-axis viewport length of the current cache
}

// New creates an unprepared tile layout. cfg must be valid.
func New(h host.Host, cfg Config, log logr.Logger) *Layout {
	return &Layout{
		host:  h,
		cfg:   cfg,
		log:   log.WithName("tile"),
		store: generation.NewStore[Cache](cfg.RetainPrevious),
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

// Generation returns how many caches have been published.
func (l *Layout) Generation() uint64 {
	return l.store.Number()
}

// Invalidate marks the cache stale. A bounds change that keeps the viewport
// length across the scroll axis only moves the viewport; pinning is resolved
// at query time, so the cache stays valid.
func (l *Layout) Invalidate(kind host.Invalidation) {
	if l.state == host.Unprepared {
		return
	}
	if kind == host.InvalidateBounds && l.crossLength() == l.preparedWidth {
		l.log.V(2).Info("bounds moved, keeping cache")
		return
	}
	l.log.V(2).Info("invalidated", "kind", kind.String())
	l.state = host.Invalidated
}

// Prepare rebuilds the cache if it is not valid. It panics if the host does
// not provide item sizes, or if called from inside a query scope.
func (l *Layout) Prepare() {
	if l.state == host.Prepared {
		return
	}
	sizes, ok := l.host.(host.SizeProvider)
	if !ok {
		panic(xerrors.Errorf("tile: %T: %w", l.host, host.ErrMissingSizeProvider))
	}

	end := l.store.BeginPrepare()
	defer end()

	viewport := l.host.Frame().Size()
	c := build(l.host, sizes, l.cfg, viewport)
	l.store.Publish(c)
	l.preparedWidth = l.crossLength()
	l.state = host.Prepared

	if l.log.V(1).Enabled() {
		l.log.V(1).Info("prepared",
			"generation", l.store.Number(),
			"sections", len(c.Sections),
			"items", c.itemCount(),
			"contentSize", c.ViewContentSize(viewport))
	}
	for s, n := range c.Extents {
		l.log.V(2).Info("packed section", "section", s, "extents", n, "shift", c.Sections[s].Shift)
	}
}

// crossLength is the viewport length items are packed across.
func (l *Layout) crossLength() float64 {
	size := l.host.Frame().Size()
	if l.cfg.Orientation == geom.Horizontal {
		return size.Height
	}
	return size.Width
}

// cache returns the generation queries read, or nil before the first Prepare.
func (l *Layout) cache() *Cache {
	return l.store.Current()
}

func (l *Layout) query(c *Cache) query {
	offset := l.host.ScrollOffset()
	extent := l.host.Frame().Size()
	if c.Orientation == geom.Horizontal {
		offset = offset.Transpose()
		extent = extent.Transpose()
	}
	return query{
		pinHeaders: l.cfg.PinHeaders,
		pinFooters: l.cfg.PinFooters,
		view:       viewState{offset: offset.Y, extent: extent.Height},
	}
}

// ContentSize returns the scrollable size of the content. It is never
// shorter than the current viewport, so a resize that keeps the cache still
// updates it.
func (l *Layout) ContentSize() geom.Size {
	c := l.cache()
	if c == nil {
		return geom.Size{}
	}
	return c.ViewContentSize(l.host.Frame().Size())
}

// AttributesInRect returns copies of the attributes of every item, header and
// footer whose frame intersects r.
func (l *Layout) AttributesInRect(r geom.Rect) []*attr.Attributes {
	c := l.cache()
	if c == nil {
		return nil
	}
	return c.inRect(r, l.query(c))
}

// AttributesForItem returns a copy of the attributes of the item at p.
func (l *Layout) AttributesForItem(p attr.IndexPath) (*attr.Attributes, bool) {
	c := l.cache()
	if c == nil {
		return nil, false
	}
	return c.item(p)
}

// AttributesForSupplementary returns the header or footer of a section, with
// pinning applied for the current scroll offset.
func (l *Layout) AttributesForSupplementary(section int, kind attr.Kind) (*attr.Attributes, bool) {
	c := l.cache()
	if c == nil {
		return nil, false
	}
	return c.supplementary(section, kind, l.query(c))
}

// IndexPathInDirection returns the item next to p in direction d.
// ok is false, and p is returned, when there is no such item.
func (l *Layout) IndexPathInDirection(p attr.IndexPath, d attr.Direction) (attr.IndexPath, bool) {
	c := l.cache()
	if c == nil {
		return p, false
	}
	return c.neighbor(p, d)
}

// IndexPathsBetween returns all index paths from a to b inclusive.
func (l *Layout) IndexPathsBetween(a, b attr.IndexPath) []attr.IndexPath {
	c := l.cache()
	if c == nil {
		return nil
	}
	return c.between(a, b)
}

// UsePrevious runs fn with every query answering from the generation before
// the latest Prepare. Without a retained generation queries answer from the
// latest one.
func (l *Layout) UsePrevious(fn func()) {
	l.store.UsePrevious(fn)
}

// DiscardPrevious releases the retained generation.
func (l *Layout) DiscardPrevious() {
	l.store.DiscardPrevious()
}
