package gridlayout

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/host"
	"github.com/grindlemire/go-gridlayout/internal/masonry"
	"github.com/grindlemire/go-gridlayout/internal/tile"
)

// Host is the view a layout is attached to.
type Host = host.Host

// DataSource reports the sections and rows of the data set.
type DataSource = host.DataSource

// SizeProvider is implemented by hosts of a tile layout.
type SizeProvider = host.SizeProvider

// HeightProvider is implemented by hosts of a masonry layout.
type HeightProvider = host.HeightProvider

var (
	ErrNilHost = xerrors.New("host must not be nil")

	ErrMissingSizeProvider   = host.ErrMissingSizeProvider
	ErrMissingHeightProvider = host.ErrMissingHeightProvider

	ErrInvalidGridSize = tile.ErrInvalidGridSize
	ErrInvalidSpacing  = tile.ErrInvalidSpacing
	ErrInvalidHeight   = tile.ErrInvalidHeight
	ErrInvalidInsets   = tile.ErrInvalidInsets

	ErrInvalidColumns = masonry.ErrInvalidColumns
	ErrInvalidSpeed   = masonry.ErrInvalidSpeed
	ErrInvalidPadding = masonry.ErrInvalidPadding
)

// Layout is the query surface shared by the tile and masonry layouts.
type Layout interface {
	State() State
	Generation() uint64
	Invalidate(kind Invalidation)
	Prepare()

	ContentSize() Size
	AttributesInRect(r Rect) []*Attributes
	AttributesForItem(p IndexPath) (*Attributes, bool)
	AttributesForSupplementary(section int, kind Kind) (*Attributes, bool)
	IndexPathInDirection(p IndexPath, d Direction) (IndexPath, bool)
	IndexPathsBetween(a, b IndexPath) []IndexPath

	UsePrevious(fn func())
	DiscardPrevious()
}

var (
	_ Layout = (*tile.Layout)(nil)
	_ Layout = (*masonry.Layout)(nil)
)

// VisibleRect returns the part of the content the host currently shows.
func VisibleRect(h Host) Rect {
	return Rect{
		X:      h.ScrollOffset().X,
		Y:      h.ScrollOffset().Y,
		Width:  h.Frame().Width,
		Height: h.Frame().Height,
	}
}

// VisibleItems returns the attributes of everything inside the host's
// visible rect.
func VisibleItems(l Layout, h Host) []*Attributes {
	return l.AttributesInRect(VisibleRect(h))
}
