package masonry

import (
	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host"
)

// Column is one placed column. Item frames are fixed at prepare time; the
// scroll speed only moves them at query time.
type Column struct {
	X, Width float64
	Speed    float64

	// Height is where the next item would start. SpeedHeight is the same
	// distance scaled by 1/Speed and decides which column fills next.
	Height      float64
	SpeedHeight float64

	// Items are ordered top to bottom, which is also data order.
	Items []*attr.Attributes
}

// location finds an item inside Columns.
type location struct {
	column, index int
}

// Columns is one generation of a masonry layout.
type Columns struct {
	Columns []Column
	Metrics Metrics

	// Height is the content height before clamping to the viewport.
	Height float64

	// Width is the viewport width the columns were placed for.
	Width float64

	sections [][]location
}

// Place distributes every item, flattened across sections, into the column
// with the least speed-adjusted height. Ties go to the faster column, then
// to the lower index. heights is asked once per item with the column width.
func Place(ds host.DataSource, heights host.HeightProvider, cfg Config, viewport geom.Size) *Columns {
	available := max(0, viewport.Width-cfg.Padding.Horizontal())
	m := ColumnMetrics(available, cfg.Columns, cfg.MinColumnWidth, cfg.Spacing)

	c := &Columns{
		Columns: make([]Column, m.Count),
		Metrics: m,
		Width:   viewport.Width,
	}
	for i := range c.Columns {
		speed := cfg.Speed(i)
		c.Columns[i] = Column{
			X:           m.X(cfg.Padding.Left, cfg.Spacing, i),
			Width:       m.Width,
			Speed:       speed,
			Height:      cfg.Padding.Top,
			SpeedHeight: cfg.Padding.Top / speed,
		}
	}

	n := ds.NumberOfSections()
	c.sections = make([][]location, n)
	for s := 0; s < n; s++ {
		count := ds.NumberOfItemsInSection(s)
		c.sections[s] = make([]location, count)
		for row := 0; row < count; row++ {
			p := host.IndexPathForRow(row, s)
			i := c.shortest()
			col := &c.Columns[i]

			h := heights.HeightForItem(p, m.Width)
			a := attr.New(p, attr.Cell)
			a.Frame = geom.NewRect(col.X, col.Height, col.Width, h)

			c.sections[s][row] = location{column: i, index: len(col.Items)}
			col.Items = append(col.Items, a)
			col.Height += h + cfg.CellSpacing
			col.SpeedHeight += (h + cfg.CellSpacing) / col.Speed
		}
	}

	for _, col := range c.Columns {
		c.Height = max(c.Height, col.SpeedHeight+cfg.Padding.Bottom)
	}
	return c
}

// shortest returns the column the next item goes into.
func (c *Columns) shortest() int {
	best := 0
	for i := 1; i < len(c.Columns); i++ {
		a, b := &c.Columns[i], &c.Columns[best]
		if a.SpeedHeight < b.SpeedHeight || (a.SpeedHeight == b.SpeedHeight && a.Speed > b.Speed) {
			best = i
		}
	}
	return best
}

// locate returns where p was placed.
func (c *Columns) locate(p attr.IndexPath) (location, bool) {
	if p.Section < 0 || p.Section >= len(c.sections) {
		return location{}, false
	}
	rows := c.sections[p.Section]
	if p.Row < 0 || p.Row >= len(rows) {
		return location{}, false
	}
	return rows[p.Row], true
}

// ContentSize returns the scrollable size for a viewport.
func (c *Columns) ContentSize(viewport geom.Size) geom.Size {
	return geom.Size{Width: c.Width, Height: max(c.Height, viewport.Height)}
}

// count reports the rows of a section.
func (c *Columns) count(section int) int {
	return len(c.sections[section])
}
