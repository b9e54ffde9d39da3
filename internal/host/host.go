// Package host declares what the layouts consume from the view that owns
// them, plus the invalidation state shared by every layout.
package host

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

var (
	// ErrMissingSizeProvider is raised when a tile layout is prepared for a
	// host that cannot report item sizes.
	ErrMissingSizeProvider = xerrors.New("host does not implement SizeForItem")

	// ErrMissingHeightProvider is raised when a masonry layout is prepared
	// for a host that cannot report item heights.
	ErrMissingHeightProvider = xerrors.New("host does not implement HeightForItem")
)

// DataSource reports the shape of the data set.
type DataSource interface {
	NumberOfSections() int
	NumberOfItemsInSection(section int) int
}

// Host is the view a layout is attached to. It is read on every prepare and
// query; the layout never writes to it.
type Host interface {
	DataSource

	// Frame is the viewport rectangle; only its size matters for layout.
	Frame() geom.Rect

	// ScrollOffset is the content offset currently at the viewport origin.
	ScrollOffset() geom.Point
}

// SizeProvider reports the intrinsic size of an item given the width
// available for it.
type SizeProvider interface {
	SizeForItem(p attr.IndexPath, availableWidth float64) geom.Size
}

// HeightProvider reports an item's height for a given column width.
type HeightProvider interface {
	HeightForItem(p attr.IndexPath, columnWidth float64) float64
}

// IndexPathForRow mirrors the host helper that builds an index path.
func IndexPathForRow(row, section int) attr.IndexPath {
	return attr.IndexPath{Section: section, Row: row}
}

// CountItems returns the total number of items across all sections.
func CountItems(ds DataSource) int {
	n := 0
	for s := 0; s < ds.NumberOfSections(); s++ {
		n += ds.NumberOfItemsInSection(s)
	}
	return n
}
