package tile

import (
	"math"

	"github.com/grindlemire/go-gridlayout/internal/geom"
)

// Packing describes the area one section's items are packed into.
type Packing struct {
	// Origin is the top-left corner of the section body.
	Origin geom.Point

	// Width is the width available to items. The packing area is unbounded
	// downwards.
	Width float64

	// GridSize quantizes item sizes; values <= 1 disable quantization.
	GridSize float64

	// Spacing is the minimum gap kept between any two items.
	Spacing float64
}

// Placement is the result of packing one section.
type Placement struct {
	// Frames holds one frame per input size, in input order.
	Frames []geom.Rect

	// Used is the bounding box of all frames after centering.
	Used geom.Rect

	// Shift is the horizontal centering offset applied to every frame.
	Shift float64

	// Extents is the number of free regions left when packing finished.
	Extents int
}

// Quantize rounds v to the nearest size an item spanning whole grid cells can
// have: n*grid + (n-1)*spacing for some n >= 1. With grid <= 1, v is
// returned unchanged.
func Quantize(v, grid, spacing float64) float64 {
	if grid <= 1 {
		return v
	}
	n := max(1, math.Round((v+spacing)/(grid+spacing)))
	return n*grid + (n-1)*spacing
}

// quantizeDown is Quantize rounding towards fewer cells, so the result never
// exceeds v unless even a single cell does.
func quantizeDown(v, grid, spacing float64) float64 {
	if grid <= 1 {
		return v
	}
	n := max(1, math.Floor((v+spacing)/(grid+spacing)))
	return n*grid + (n-1)*spacing
}

// ConstrainSize quantizes both dimensions of size and clamps the width to
// the available width, so every item fits at least the full-width strip at
// the bottom of a section.
func ConstrainSize(size geom.Size, grid, spacing, width float64) geom.Size {
	w := Quantize(size.Width, grid, spacing)
	h := Quantize(size.Height, grid, spacing)
	if w > width {
		w = min(quantizeDown(width, grid, spacing), width)
	}
	return geom.Size{Width: w, Height: h}
}

// Pack places items in order, each at the top-left-most free spot that can
// hold it, keeping Spacing between items. Once every item is placed the
// whole block is shifted right to centre it within Width.
//
// Sizes and Width must be positive and Spacing non-negative. Degenerate input
// is not rejected; the resulting placement is unspecified.
func Pack(sizes []geom.Size, p Packing) Placement {
	grid := p.GridSize
	if grid <= 1 {
		grid = 0
	}

	var free extents
	free.reset(geom.NewRect(p.Origin.X, p.Origin.Y, p.Width, unbounded), grid)

	frames := make([]geom.Rect, len(sizes))
	var used geom.Rect
	for i, s := range sizes {
		size := ConstrainSize(s, p.GridSize, p.Spacing, p.Width)

		slot, ok := free.fit(size)
		if !ok {
			// Only reachable with degenerate input; stack below everything.
			slot = geom.NewRect(p.Origin.X, max(p.Origin.Y, used.Bottom()+p.Spacing), size.Width, size.Height)
		}

		frame := geom.RectFrom(slot.Origin(), size)
		frames[i] = frame
		used = used.Union(frame)

		free.carve(frame.InsetBy(-p.Spacing, -p.Spacing))
	}

	var shift float64
	if len(frames) > 0 {
		shift = Center(frames, p.Width, used.Right()-p.Origin.X)
		used = used.Translate(shift, 0)
	}

	return Placement{
		Frames:  frames,
		Used:    used,
		Shift:   shift,
		Extents: free.count(),
	}
}

// Center shifts frames right by half of width-usedWidth, truncated towards
// zero, and returns the shift. It runs once per section, after packing.
func Center(frames []geom.Rect, width, usedWidth float64) float64 {
	shift := math.Trunc((width - usedWidth) / 2)
	if shift == 0 {
		return 0
	}
	for i := range frames {
		frames[i] = frames[i].Translate(shift, 0)
	}
	return shift
}
