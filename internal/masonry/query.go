package masonry

import (
	"slices"
	"sort"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// Adjustment is how far a column with the given speed has moved relative to
// the scroll offset. A column at speed 1 never moves.
func Adjustment(speed, scrollY float64) float64 {
	return scrollY - scrollY*speed
}

// Query returns copies of the attributes whose frames, moved by their
// column's adjustment at scrollY, intersect r. Results are in data order.
func Query(c *Columns, scrollY float64, r geom.Rect) []*attr.Attributes {
	var out []*attr.Attributes
	for i := range c.Columns {
		col := &c.Columns[i]
		if col.X >= r.Right() || col.X+col.Width <= r.X {
			continue
		}
		adj := Adjustment(col.Speed, scrollY)
		top, bottom := r.Y-adj, r.Bottom()-adj

		first := sort.Search(len(col.Items), func(k int) bool {
			return col.Items[k].Frame.Bottom() > top
		})
		for _, a := range col.Items[first:] {
			if a.Frame.Y >= bottom {
				break
			}
			moved := a.Copy()
			moved.Frame = moved.Frame.Translate(0, adj)
			if moved.Frame.Intersects(r) {
				out = append(out, moved)
			}
		}
	}
	slices.SortFunc(out, func(a, b *attr.Attributes) int {
		return a.IndexPath.Compare(b.IndexPath)
	})
	return out
}

// Item returns a copy of p's attributes moved by its column's adjustment.
func Item(c *Columns, scrollY float64, p attr.IndexPath) (*attr.Attributes, bool) {
	loc, ok := c.locate(p)
	if !ok {
		return nil, false
	}
	col := &c.Columns[loc.column]
	a := col.Items[loc.index].Copy()
	a.Frame = a.Frame.Translate(0, Adjustment(col.Speed, scrollY))
	return a, true
}
