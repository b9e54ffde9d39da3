package tile

import (
	"sort"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host"
)

// Z-order of the views a tile layout produces.
const (
	zCell          = 0
	zSupplementary = 1
	zPinned        = 2
)

// Section is the placed geometry of one section.
//
// All frames are stored in layout space, where content always grows
// downwards. Horizontal layouts transpose frames on their way out.
type Section struct {
	Frame  geom.Rect // Outer frame, including insets, header and footer
	Body   geom.Rect // Area the items were packed into
	Items  []*attr.Attributes
	Header *attr.Attributes
	Footer *attr.Attributes
	Shift  float64 // Centering offset applied to Items
}

// Cache is one generation of a tile layout.
type Cache struct {
	Sections    []Section
	Length      float64 // Stacked length of all sections along the scroll axis
	Orientation geom.Axis
	Extents     []int // Free regions left per section, for diagnostics
}

// toLayout converts a view-space rect into layout space.
func (c *Cache) toLayout(r geom.Rect) geom.Rect {
	if c.Orientation == geom.Horizontal {
		return r.Transpose()
	}
	return r
}

// toView converts a layout-space rect into view space.
func (c *Cache) toView(r geom.Rect) geom.Rect {
	return c.toLayout(r)
}

// contentSize is the layout-space content size for a layout-space viewport:
// the stacked length, but never shorter than the viewport.
func (c *Cache) contentSize(viewport geom.Size) geom.Size {
	return geom.Size{Width: viewport.Width, Height: max(c.Length, viewport.Height)}
}

// ViewContentSize returns the content size in view space for a view of the
// given size.
func (c *Cache) ViewContentSize(view geom.Size) geom.Size {
	if c.Orientation == geom.Horizontal {
		return c.contentSize(view.Transpose()).Transpose()
	}
	return c.contentSize(view)
}

// build stacks every section of ds along the scroll axis and packs its items.
func build(ds host.DataSource, sizes host.SizeProvider, cfg Config, viewport geom.Size) *Cache {
	horizontal := cfg.Orientation == geom.Horizontal
	insets := cfg.SectionInsets
	if horizontal {
		viewport = viewport.Transpose()
		insets = insets.Transpose()
	}

	width := max(0, viewport.Width-insets.Horizontal())
	n := ds.NumberOfSections()
	c := &Cache{
		Sections:    make([]Section, n),
		Orientation: cfg.Orientation,
		Extents:     make([]int, n),
	}

	var cursor float64
	for s := 0; s < n; s++ {
		sec := &c.Sections[s]
		top := cursor
		y := top + insets.Top

		if cfg.HeaderHeight > 0 {
			sec.Header = attr.NewSupplementary(s, attr.KindHeader)
			sec.Header.Frame = geom.NewRect(insets.Left, y, width, cfg.HeaderHeight)
			sec.Header.Style.ZIndex = zSupplementary
			y += cfg.HeaderHeight + cfg.Spacing
		}

		count := ds.NumberOfItemsInSection(s)
		itemSizes := make([]geom.Size, count)
		for row := 0; row < count; row++ {
			size := sizes.SizeForItem(host.IndexPathForRow(row, s), width)
			if horizontal {
				size = size.Transpose()
			}
			itemSizes[row] = size
		}

		placed := Pack(itemSizes, Packing{
			Origin:   geom.Pt(insets.Left, y),
			Width:    width,
			GridSize: cfg.GridSize,
			Spacing:  cfg.Spacing,
		})

		sec.Items = make([]*attr.Attributes, count)
		for row, frame := range placed.Frames {
			a := attr.New(host.IndexPathForRow(row, s), attr.Cell)
			a.Frame = frame
			a.Style.ZIndex = zCell
			sec.Items[row] = a
		}

		bodyHeight := 0.0
		if count > 0 {
			bodyHeight = placed.Used.Bottom() - y
		}
		sec.Body = geom.NewRect(insets.Left, y, width, bodyHeight)
		sec.Shift = placed.Shift
		c.Extents[s] = placed.Extents
		y = sec.Body.Bottom()

		if cfg.FooterHeight > 0 {
			y += cfg.Spacing
			sec.Footer = attr.NewSupplementary(s, attr.KindFooter)
			sec.Footer.Frame = geom.NewRect(insets.Left, y, width, cfg.FooterHeight)
			sec.Footer.Style.ZIndex = zSupplementary
			y += cfg.FooterHeight
		}

		y += insets.Bottom
		sec.Frame = geom.NewRect(0, top, viewport.Width, y-top)
		cursor = y
	}

	c.Length = cursor
	return c
}

// sectionsIn returns the index range [first, last) of sections whose outer
// frame overlaps the layout-space band [top, bottom).
func (c *Cache) sectionsIn(top, bottom float64) (first, last int) {
	first = searchSections(c.Sections, top)
	last = first
	for last < len(c.Sections) && c.Sections[last].Frame.Y < bottom {
		last++
	}
	return first, last
}

// searchSections returns the first section whose frame ends below y.
func searchSections(sections []Section, y float64) int {
	return sort.Search(len(sections), func(i int) bool {
		return sections[i].Frame.Bottom() > y
	})
}
