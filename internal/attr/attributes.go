// Package attr defines the layout attributes produced for every placed item.
package attr

import (
	"fmt"

	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// IndexPath addresses one item as (section, row).
type IndexPath struct {
	Section, Row int
}

// Path is shorthand for IndexPath{Section: section, Row: row}.
func Path(section, row int) IndexPath {
	return IndexPath{Section: section, Row: row}
}

// Compare orders index paths by section, then row.
// It returns -1, 0 or +1.
func (p IndexPath) Compare(other IndexPath) int {
	switch {
	case p.Section < other.Section:
		return -1
	case p.Section > other.Section:
		return 1
	case p.Row < other.Row:
		return -1
	case p.Row > other.Row:
		return 1
	}
	return 0
}

// Less reports whether p sorts before other.
func (p IndexPath) Less(other IndexPath) bool {
	return p.Compare(other) < 0
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Row)
}

// ItemType distinguishes data cells from views the layout adds itself.
type ItemType uint8

const (
	Cell          ItemType = iota // A data item
	Supplementary                 // A section header or footer
	Decoration                    // Purely visual, never selectable
)

func (t ItemType) String() string {
	switch t {
	case Cell:
		return "cell"
	case Supplementary:
		return "supplementary"
	case Decoration:
		return "decoration"
	}
	return fmt.Sprintf("ItemType(%d)", t)
}

// Kind identifies the role of a supplementary item.
type Kind uint8

const (
	KindNone Kind = iota
	KindHeader
	KindFooter
)

// Style holds the presentation values a renderer applies to an item.
type Style struct {
	Opacity  float64
	Scale    float64
	Rotation float64 // Degrees
	ZIndex   int
	Blur     float64
}

// DefaultStyle returns a fully opaque, unscaled style.
func DefaultStyle() Style {
	return Style{Opacity: 1, Scale: 1}
}

// Lerp interpolates the numeric style values. ZIndex is discrete and jumps
// to the target once fraction reaches one half.
func (s Style) Lerp(to Style, fraction float64) Style {
	z := s.ZIndex
	if fraction >= 0.5 {
		z = to.ZIndex
	}
	return Style{
		Opacity:  geom.Lerp(s.Opacity, to.Opacity, fraction),
		Scale:    geom.Lerp(s.Scale, to.Scale, fraction),
		Rotation: geom.Lerp(s.Rotation, to.Rotation, fraction),
		ZIndex:   z,
		Blur:     geom.Lerp(s.Blur, to.Blur, fraction),
	}
}

// Attributes describes where and how one item is presented.
type Attributes struct {
	IndexPath IndexPath
	Type      ItemType
	Kind      Kind
	Frame     geom.Rect
	Style     Style
}

// New returns attributes for p with the default style and an empty frame.
func New(p IndexPath, t ItemType) *Attributes {
	return &Attributes{IndexPath: p, Type: t, Style: DefaultStyle()}
}

// NewSupplementary returns header or footer attributes for a section.
func NewSupplementary(section int, kind Kind) *Attributes {
	a := New(IndexPath{Section: section}, Supplementary)
	a.Kind = kind
	return a
}

// Copy returns an independent copy. Cached attributes are shared between
// queries, so callers that adjust a frame must copy first.
func (a *Attributes) Copy() *Attributes {
	c := *a
	return &c
}

// Interpolate returns attributes a fraction of the way from a to to.
// Identity fields (index path, type, kind) come from to.
func (a *Attributes) Interpolate(to *Attributes, fraction float64) *Attributes {
	return &Attributes{
		IndexPath: to.IndexPath,
		Type:      to.Type,
		Kind:      to.Kind,
		Frame:     a.Frame.Lerp(to.Frame, fraction),
		Style:     a.Style.Lerp(to.Style, fraction),
	}
}

// Equal reports whether both attributes describe the same presentation.
func (a *Attributes) Equal(other *Attributes) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}
