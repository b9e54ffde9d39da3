package tile

import (
	"math"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// neighbor finds the item next to p in direction d. It probes the band of
// content between p's edge and the content edge and picks the item whose
// facing edge is nearest; ties go to the item whose centre is closest on
// the other axis, then to the earlier index path.
func (c *Cache) neighbor(p attr.IndexPath, d attr.Direction) (attr.IndexPath, bool) {
	from, ok := c.item(p)
	if !ok {
		return p, false
	}
	f := from.Frame

	var probe geom.Rect
	switch d {
	case attr.Left:
		probe = geom.NewRect(0, f.Y, f.X, f.Height)
	case attr.Right:
		probe = geom.NewRect(f.Right(), f.Y, unbounded, f.Height)
	case attr.Above:
		probe = geom.NewRect(f.X, 0, f.Width, f.Y)
	case attr.Below:
		probe = geom.NewRect(f.X, f.Bottom(), f.Width, unbounded)
	}
	if probe.IsEmpty() {
		return p, false
	}

	var best *attr.Attributes
	var bestGap, bestSkew float64
	for _, a := range c.inRect(probe, query{}) {
		if a.Type != attr.Cell || a.IndexPath == p {
			continue
		}
		gap, skew := distance(f, a.Frame, d)
		if best == nil || gap < bestGap ||
			(gap == bestGap && (skew < bestSkew ||
				(skew == bestSkew && a.IndexPath.Less(best.IndexPath)))) {
			best, bestGap, bestSkew = a, gap, skew
		}
	}
	if best == nil {
		return p, false
	}
	return best.IndexPath, true
}

// distance measures how far to is from from in direction d: gap between the
// facing edges, and skew between the centres on the cross axis.
func distance(from, to geom.Rect, d attr.Direction) (gap, skew float64) {
	fc, tc := from.Center(), to.Center()
	switch d {
	case attr.Left:
		return from.X - to.Right(), math.Abs(fc.Y - tc.Y)
	case attr.Right:
		return to.X - from.Right(), math.Abs(fc.Y - tc.Y)
	case attr.Above:
		return from.Y - to.Bottom(), math.Abs(fc.X - tc.X)
	default:
		return to.Y - from.Bottom(), math.Abs(fc.X - tc.X)
	}
}

// between returns every index path from a to b inclusive in data order,
// whichever of the two comes first. Paths outside the cache are clamped.
func (c *Cache) between(a, b attr.IndexPath) []attr.IndexPath {
	if b.Less(a) {
		a, b = b, a
	}
	return attr.Between(a, b, len(c.Sections), func(s int) int {
		return len(c.Sections[s].Items)
	})
}
