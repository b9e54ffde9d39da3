package tile

import (
	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// query holds the per-call inputs that are not part of the cache.
type query struct {
	pinHeaders bool
	pinFooters bool
	view       viewState
}

// inRect returns copies of every attribute whose frame, after pinning,
// intersects r. Both r and the returned frames are in view space.
// Per section the order is header, items in data order, footer.
func (c *Cache) inRect(r geom.Rect, q query) []*attr.Attributes {
	lr := c.toLayout(r)
	first, last := c.sectionsIn(lr.Y, lr.Bottom())

	var out []*attr.Attributes
	add := func(a *attr.Attributes) {
		if a != nil && a.Frame.Intersects(lr) {
			a.Frame = c.toView(a.Frame)
			out = append(out, a)
		}
	}

	for s := first; s < last; s++ {
		sec := &c.Sections[s]
		add(c.header(s, q.pinHeaders, q.view))
		if sec.Body.Intersects(lr) {
			for _, a := range sec.Items {
				if a.Frame.Intersects(lr) {
					add(a.Copy())
				}
			}
		}
		add(c.footer(s, q.pinFooters, q.view))
	}
	return out
}

// item returns a copy of the attributes for p in view space.
func (c *Cache) item(p attr.IndexPath) (*attr.Attributes, bool) {
	a, ok := c.lookup(p)
	if !ok {
		return nil, false
	}
	a = a.Copy()
	a.Frame = c.toView(a.Frame)
	return a, true
}

// lookup returns the cached attributes for p without copying.
func (c *Cache) lookup(p attr.IndexPath) (*attr.Attributes, bool) {
	if p.Section < 0 || p.Section >= len(c.Sections) {
		return nil, false
	}
	items := c.Sections[p.Section].Items
	if p.Row < 0 || p.Row >= len(items) {
		return nil, false
	}
	return items[p.Row], true
}

// supplementary returns the header or footer of a section in view space.
func (c *Cache) supplementary(section int, kind attr.Kind, q query) (*attr.Attributes, bool) {
	if section < 0 || section >= len(c.Sections) {
		return nil, false
	}
	var a *attr.Attributes
	switch kind {
	case attr.KindHeader:
		a = c.header(section, q.pinHeaders, q.view)
	case attr.KindFooter:
		a = c.footer(section, q.pinFooters, q.view)
	}
	if a == nil {
		return nil, false
	}
	a.Frame = c.toView(a.Frame)
	return a, true
}

// itemCount returns the number of items in the cache.
func (c *Cache) itemCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Items)
	}
	return n
}
