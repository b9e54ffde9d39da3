// Package hosttest provides an in-memory host for layout tests.
package hosttest

import (
	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// Host is a fixed data set of item sizes with a movable viewport.
// It implements host.Host, host.SizeProvider and host.HeightProvider.
type Host struct {
	Sections [][]geom.Size
	View     geom.Rect
	Scroll   geom.Point

	// Calls counts delegate size lookups.
	Calls int
}

// New returns a host with a viewport of the given size.
func New(width, height float64, sections ...[]geom.Size) *Host {
	return &Host{
		Sections: sections,
		View:     geom.NewRect(0, 0, width, height),
	}
}

// Uniform builds a section of n items that all share one size.
func Uniform(n int, w, h float64) []geom.Size {
	out := make([]geom.Size, n)
	for i := range out {
		out[i] = geom.Sz(w, h)
	}
	return out
}

// Heights builds a section of full-width items with the given heights.
func Heights(hs ...float64) []geom.Size {
	out := make([]geom.Size, len(hs))
	for i, h := range hs {
		out[i] = geom.Sz(0, h)
	}
	return out
}

func (h *Host) NumberOfSections() int { return len(h.Sections) }

func (h *Host) NumberOfItemsInSection(section int) int { return len(h.Sections[section]) }

func (h *Host) Frame() geom.Rect { return h.View }

func (h *Host) ScrollOffset() geom.Point { return h.Scroll }

// SizeForItem returns the stored size unchanged.
func (h *Host) SizeForItem(p attr.IndexPath, _ float64) geom.Size {
	h.Calls++
	return h.Sections[p.Section][p.Row]
}

// HeightForItem returns the stored height.
func (h *Host) HeightForItem(p attr.IndexPath, _ float64) float64 {
	h.Calls++
	return h.Sections[p.Section][p.Row].Height
}

// DataOnly hides the size methods of a Host so tests can exercise the
// missing-delegate path.
type DataOnly struct {
	H *Host
}

func (d DataOnly) NumberOfSections() int { return d.H.NumberOfSections() }

func (d DataOnly) NumberOfItemsInSection(section int) int {
	return d.H.NumberOfItemsInSection(section)
}

func (d DataOnly) Frame() geom.Rect { return d.H.Frame() }

func (d DataOnly) ScrollOffset() geom.Point { return d.H.ScrollOffset() }
