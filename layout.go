// layout.go re-exports geometry and attribute types from internal packages.
// Any changes to internal/geom or internal/attr types must be mirrored here.

package gridlayout

import (
	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host"
)

// Point represents an x/y coordinate.
type Point = geom.Point

// Size represents a width/height pair.
type Size = geom.Size

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Insets represents spacing on four sides.
type Insets = geom.Insets

// Axis is the direction content scrolls in.
type Axis = geom.Axis

const (
	Vertical   = geom.Vertical
	Horizontal = geom.Horizontal
)

// IndexPath addresses an item as (section, row).
type IndexPath = attr.IndexPath

// Attributes is the placed frame and style of one item or supplementary view.
type Attributes = attr.Attributes

// Style holds presentation values that travel with a frame.
type Style = attr.Style

// ItemType distinguishes cells from supplementary and decoration views.
type ItemType = attr.ItemType

const (
	Cell          = attr.Cell
	Supplementary = attr.Supplementary
	Decoration    = attr.Decoration
)

// Kind names a supplementary view.
type Kind = attr.Kind

const (
	KindHeader = attr.KindHeader
	KindFooter = attr.KindFooter
)

// Direction is a keyboard navigation direction.
type Direction = attr.Direction

const (
	Left  = attr.Left
	Right = attr.Right
	Above = attr.Above
	Below = attr.Below
)

// State tracks where a layout is in its prepare cycle.
type State = host.State

const (
	Unprepared  = host.Unprepared
	Prepared    = host.Prepared
	Invalidated = host.Invalidated
)

// Invalidation says what changed since the last Prepare.
type Invalidation = host.Invalidation

const (
	InvalidateData   = host.InvalidateData
	InvalidateBounds = host.InvalidateBounds
	InvalidateAll    = host.InvalidateAll
)

// Pt creates a Point.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// Sz creates a Size.
func Sz(w, h float64) Size {
	return geom.Sz(w, h)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// Path creates an IndexPath.
func Path(section, row int) IndexPath {
	return attr.Path(section, row)
}

// InsetAll returns Insets with n on every side.
func InsetAll(n float64) Insets {
	return geom.InsetAll(n)
}

// InsetSymmetric returns Insets with v on top and bottom and h on the sides.
func InsetSymmetric(v, h float64) Insets {
	return geom.InsetSymmetric(v, h)
}
