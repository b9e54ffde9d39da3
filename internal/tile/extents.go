package tile

import (
	"slices"

	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// unbounded is the height of the extent a section starts with, and the reach
// of navigation probes. It is large enough to never run out and small enough
// that float sums stay exact.
const unbounded = 1 << 40

// extents tracks the unused area of one section while items are packed.
//
// The list holds the maximal free rectangles ordered top-to-bottom, then
// left-to-right. Extents may overlap, but none is contained in another.
// Together with the trimming rectangles of the placed items they cover the
// packing area. Extents are only ever removed or replaced by smaller pieces;
// nothing grows.
type extents struct {
	rects []geom.Rect
	grid  float64 // Pieces thinner than this are dropped
}

// reset starts a new section with a single extent covering area.
func (e *extents) reset(area geom.Rect, grid float64) {
	e.rects = append(e.rects[:0], area)
	e.grid = grid
}

// fit returns the first extent, in list order, that can hold size.
// Because of the ordering this is the top-most, then left-most, free region
// that is large enough.
// TODO: measure best fit by smallest leftover area against first fit on
// mixed-size photo sets before changing the policy.
func (e *extents) fit(size geom.Size) (geom.Rect, bool) {
	for _, r := range e.rects {
		if size.Width <= r.Width && size.Height <= r.Height {
			return r, true
		}
	}
	return geom.Rect{}, false
}

// carve removes trim from the free space. Extents inside trim are dropped and
// extents overlapping it are replaced by the parts that remain.
func (e *extents) carve(trim geom.Rect) {
	var pieces []geom.Rect
	kept := e.rects[:0]
	for _, r := range e.rects {
		switch {
		case trim.ContainsRect(r):
		case !trim.Intersects(r):
			kept = append(kept, r)
		default:
			pieces = e.split(r, trim, pieces)
		}
	}
	e.rects = kept
	for _, p := range pieces {
		e.insert(p)
	}
	e.prune()
}

// prune drops every extent contained in another one.
func (e *extents) prune() {
	kept := make([]geom.Rect, 0, len(e.rects))
	for i, r := range e.rects {
		inside := false
		for j, o := range e.rects {
			if i != j && o.ContainsRect(r) {
				inside = true
				break
			}
		}
		if !inside {
			kept = append(kept, r)
		}
	}
	e.rects = kept
}

// split appends the largest parts of r not covered by trim: full-width
// strips above and below trim, and full-height strips left and right of it.
// The pieces overlap where they meet. Pieces thinner than the grid on their
// cut axis are discarded.
func (e *extents) split(r, trim geom.Rect, out []geom.Rect) []geom.Rect {
	if trim.Y > r.Y {
		out = e.keep(out, geom.NewRect(r.X, r.Y, r.Width, trim.Y-r.Y), false)
	}

	if trim.X > r.X {
		out = e.keep(out, geom.NewRect(r.X, r.Y, trim.X-r.X, r.Height), true)
	}
	if trim.Right() < r.Right() {
		out = e.keep(out, geom.NewRect(trim.Right(), r.Y, r.Right()-trim.Right(), r.Height), true)
	}

	if trim.Bottom() < r.Bottom() {
		out = e.keep(out, geom.NewRect(r.X, trim.Bottom(), r.Width, r.Bottom()-trim.Bottom()), false)
	}
	return out
}

// keep appends piece unless it is a sliver. horizontal selects which
// dimension was produced by the cut.
func (e *extents) keep(out []geom.Rect, piece geom.Rect, horizontal bool) []geom.Rect {
	d := piece.Height
	if horizontal {
		d = piece.Width
	}
	if d <= 0 || d < e.grid || piece.IsEmpty() {
		return out
	}
	return append(out, piece)
}

// insert places r at its ordered position. An identical extent is never
// stored twice.
func (e *extents) insert(r geom.Rect) {
	i, found := slices.BinarySearchFunc(e.rects, r, compareOrigin)
	for ; found && i < len(e.rects) && compareOrigin(e.rects[i], r) == 0; i++ {
		if e.rects[i] == r {
			return
		}
	}
	e.rects = slices.Insert(e.rects, i, r)
}

// compareOrigin orders rectangles top-to-bottom, then left-to-right.
func compareOrigin(a, b geom.Rect) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// count returns the number of tracked extents.
func (e *extents) count() int {
	return len(e.rects)
}
