package masonry

import (
	"math"

	"github.com/grindlemire/go-gridlayout/internal/attr"
)

// Neighbor finds the item next to p in direction d at scrollY. Above and
// below step through p's column. Left and right pick the item in the
// adjacent column whose adjusted vertical centre is closest to p's; ties go
// to the upper item.
func Neighbor(c *Columns, scrollY float64, p attr.IndexPath, d attr.Direction) (attr.IndexPath, bool) {
	loc, ok := c.locate(p)
	if !ok {
		return p, false
	}
	col := c.Columns[loc.column]

	switch d {
	case attr.Above:
		if loc.index == 0 {
			return p, false
		}
		return col.Items[loc.index-1].IndexPath, true
	case attr.Below:
		if loc.index+1 >= len(col.Items) {
			return p, false
		}
		return col.Items[loc.index+1].IndexPath, true
	}

	next := loc.column - 1
	if d == attr.Right {
		next = loc.column + 1
	}
	if next < 0 || next >= len(c.Columns) || len(c.Columns[next].Items) == 0 {
		return p, false
	}

	from := col.Items[loc.index].Frame.Center().Y + Adjustment(col.Speed, scrollY)
	target := c.Columns[next]
	adj := Adjustment(target.Speed, scrollY)

	best, bestDist := 0, math.Inf(1)
	for k, a := range target.Items {
		dist := math.Abs(a.Frame.Center().Y + adj - from)
		if dist < bestDist {
			best, bestDist = k, dist
		}
	}
	return target.Items[best].IndexPath, true
}

// Between returns every index path from a to b inclusive in data order,
// whichever of the two comes first.
func Between(c *Columns, a, b attr.IndexPath) []attr.IndexPath {
	if b.Less(a) {
		a, b = b, a
	}
	return attr.Between(a, b, len(c.sections), c.count)
}
