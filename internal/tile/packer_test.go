package tile

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

func TestQuantize(t *testing.T) {
	type tc struct {
		value, grid, spacing float64
		expected             float64
	}

	tests := map[string]tc{
		"grid disabled at zero":    {value: 37, grid: 0, spacing: 10, expected: 37},
		"grid disabled at one":     {value: 37, grid: 1, spacing: 10, expected: 37},
		"exact single cell":        {value: 50, grid: 50, spacing: 10, expected: 50},
		"rounds up to two cells":   {value: 100, grid: 50, spacing: 10, expected: 110},
		"rounds down to two cells": {value: 120, grid: 50, spacing: 10, expected: 110},
		"minimum one cell":         {value: 5, grid: 50, spacing: 10, expected: 50},
		"no spacing":               {value: 130, grid: 50, spacing: 0, expected: 150},
		"three cells":              {value: 165, grid: 50, spacing: 10, expected: 170},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Quantize(tt.value, tt.grid, tt.spacing); got != tt.expected {
				t.Errorf("Quantize(%v, %v, %v) = %v, want %v", tt.value, tt.grid, tt.spacing, got, tt.expected)
			}
		})
	}
}

func TestConstrainSize_ClampsWidth(t *testing.T) {
	type tc struct {
		size     geom.Size
		grid     float64
		width    float64
		expected geom.Size
	}

	tests := map[string]tc{
		"raw clamp": {
			size:     geom.Sz(500, 40),
			width:    300,
			expected: geom.Sz(300, 40),
		},
		"grid clamp stays on grid": {
			size:     geom.Sz(500, 50),
			grid:     50,
			width:    300,
			expected: geom.Sz(290, 50),
		},
		"fits untouched": {
			size:     geom.Sz(100, 50),
			width:    300,
			expected: geom.Sz(100, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ConstrainSize(tt.size, tt.grid, 10, tt.width)
			if got != tt.expected {
				t.Errorf("ConstrainSize() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestPack_Scenarios(t *testing.T) {
	type tc struct {
		sizes    []geom.Size
		width    float64
		expected []geom.Rect
		shift    float64
	}

	// Three 100-wide items with 10 spacing need 3*100 + 2*10 = 320.
	tests := map[string]tc{
		"three items fill one row": {
			sizes: []geom.Size{geom.Sz(100, 50), geom.Sz(100, 50), geom.Sz(100, 50)},
			width: 320,
			expected: []geom.Rect{
				geom.NewRect(0, 0, 100, 50),
				geom.NewRect(110, 0, 100, 50),
				geom.NewRect(220, 0, 100, 50),
			},
		},
		"fourth item starts a new row": {
			sizes: []geom.Size{geom.Sz(100, 50), geom.Sz(100, 50), geom.Sz(100, 50), geom.Sz(100, 50)},
			width: 320,
			expected: []geom.Rect{
				geom.NewRect(0, 0, 100, 50),
				geom.NewRect(110, 0, 100, 50),
				geom.NewRect(220, 0, 100, 50),
				geom.NewRect(0, 60, 100, 50),
			},
		},
		"narrow content is centred": {
			sizes: []geom.Size{geom.Sz(100, 50), geom.Sz(100, 50), geom.Sz(80, 50)},
			width: 320,
			expected: []geom.Rect{
				geom.NewRect(10, 0, 100, 50),
				geom.NewRect(120, 0, 100, 50),
				geom.NewRect(230, 0, 80, 50),
			},
			shift: 10,
		},
		"short item fills the gap beside a tall one": {
			sizes: []geom.Size{geom.Sz(100, 100), geom.Sz(100, 40), geom.Sz(100, 40)},
			width: 210,
			expected: []geom.Rect{
				geom.NewRect(0, 0, 100, 100),
				geom.NewRect(110, 0, 100, 40),
				geom.NewRect(110, 50, 100, 40),
			},
		},
		"taller item packs beside a short one": {
			sizes: []geom.Size{geom.Sz(100, 50), geom.Sz(100, 100)},
			width: 320,
			expected: []geom.Rect{
				geom.NewRect(55, 0, 100, 50),
				geom.NewRect(165, 0, 100, 100),
			},
			shift: 55,
		},
		"tall item below a row still packs top first": {
			sizes: []geom.Size{geom.Sz(100, 50), geom.Sz(100, 50), geom.Sz(210, 120), geom.Sz(100, 50)},
			width: 320,
			expected: []geom.Rect{
				geom.NewRect(0, 0, 100, 50),
				geom.NewRect(110, 0, 100, 50),
				geom.NewRect(0, 60, 210, 120),
				geom.NewRect(220, 0, 100, 50),
			},
		},
		"empty section": {
			sizes:    nil,
			width:    320,
			expected: []geom.Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Pack(tt.sizes, Packing{Width: tt.width, Spacing: 10})
			if diff := cmp.Diff(tt.expected, got.Frames); diff != "" {
				t.Errorf("Pack() frames mismatch (-want +got):\n%s", diff)
			}
			if got.Shift != tt.shift {
				t.Errorf("Pack() shift = %v, want %v", got.Shift, tt.shift)
			}
		})
	}
}

func TestPack_OriginOffset(t *testing.T) {
	got := Pack([]geom.Size{geom.Sz(100, 50), geom.Sz(100, 50)}, Packing{
		Origin:  geom.Pt(20, 300),
		Width:   210,
		Spacing: 10,
	})
	want := []geom.Rect{
		geom.NewRect(20, 300, 100, 50),
		geom.NewRect(130, 300, 100, 50),
	}
	if diff := cmp.Diff(want, got.Frames); diff != "" {
		t.Errorf("Pack() frames mismatch (-want +got):\n%s", diff)
	}
	if got.Used != geom.NewRect(20, 300, 210, 50) {
		t.Errorf("Pack() used = %+v", got.Used)
	}
}

func TestCenter(t *testing.T) {
	type tc struct {
		width, used float64
		expected    float64
	}

	tests := map[string]tc{
		"even gap":               {width: 320, used: 300, expected: 10},
		"odd gap truncates":      {width: 321, used: 300, expected: 10},
		"negative gap truncates": {width: 300, used: 321, expected: -10},
		"full":                   {width: 300, used: 300, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			frames := []geom.Rect{geom.NewRect(0, 0, 100, 50), geom.NewRect(110, 0, 100, 50)}
			shift := Center(frames, tt.width, tt.used)
			if shift != tt.expected {
				t.Fatalf("Center() = %v, want %v", shift, tt.expected)
			}
			if frames[0].X != shift || frames[1].X != 110+shift {
				t.Errorf("frames not shifted: %+v", frames)
			}
		})
	}
}

// randomSizes returns n reproducible item sizes.
func randomSizes(seed uint64, n int, maxW, maxH int) []geom.Size {
	r := rand.New(rand.NewPCG(seed, seed))
	out := make([]geom.Size, n)
	for i := range out {
		out[i] = geom.Sz(float64(10+r.IntN(maxW-10)), float64(10+r.IntN(maxH-10)))
	}
	return out
}

func TestPack_NoOverlap(t *testing.T) {
	type tc struct {
		grid, spacing float64
	}

	tests := map[string]tc{
		"raw sizes":          {grid: 0, spacing: 10},
		"raw sizes no gap":   {grid: 0, spacing: 0},
		"grid 40 spacing 8":  {grid: 40, spacing: 8},
		"grid 25 no spacing": {grid: 25, spacing: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			const width = 400
			for seed := uint64(0); seed < 5; seed++ {
				sizes := randomSizes(seed, 60, 200, 150)
				got := Pack(sizes, Packing{Width: width, GridSize: tt.grid, Spacing: tt.spacing})

				for i, a := range got.Frames {
					if a.X < 0 || a.Right() > width {
						t.Errorf("seed %d: frame %d %+v outside packing width", seed, i, a)
					}
					ea := a.InsetBy(-tt.spacing/2, -tt.spacing/2)
					for j := i + 1; j < len(got.Frames); j++ {
						eb := got.Frames[j].InsetBy(-tt.spacing/2, -tt.spacing/2)
						if ea.Intersects(eb) {
							t.Fatalf("seed %d: frames %d %+v and %d %+v overlap", seed, i, a, j, got.Frames[j])
						}
					}
				}
			}
		})
	}
}

func TestPack_GridQuantization(t *testing.T) {
	const grid, spacing = 40.0, 8.0
	reachable := func(v float64) bool {
		for n := 1.0; n < 100; n++ {
			if v == n*grid+(n-1)*spacing {
				return true
			}
		}
		return false
	}

	got := Pack(randomSizes(42, 80, 300, 200), Packing{Width: 500, GridSize: grid, Spacing: spacing})
	for i, f := range got.Frames {
		if !reachable(f.Width) || !reachable(f.Height) {
			t.Errorf("frame %d size %vx%v is not on the grid", i, f.Width, f.Height)
		}
	}

	raw := randomSizes(42, 20, 300, 200)
	got = Pack(raw, Packing{Width: 500, GridSize: 1, Spacing: spacing})
	for i, f := range got.Frames {
		if f.Size() != raw[i] {
			t.Errorf("frame %d size = %+v, want raw %+v", i, f.Size(), raw[i])
		}
	}
}

func TestPack_Deterministic(t *testing.T) {
	sizes := randomSizes(7, 100, 180, 120)
	p := Packing{Width: 600, GridSize: 20, Spacing: 6}

	first := Pack(sizes, p)
	for n := 0; n < 5; n++ {
		again := Pack(sizes, p)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("Pack() is not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestPack_FreeSpaceCoverage(t *testing.T) {
	const width, spacing = 200.0, 10.0
	sizes := randomSizes(3, 25, 120, 80)

	var free extents
	free.reset(geom.NewRect(0, 0, width, unbounded), 0)
	var trims []geom.Rect
	var bottom float64

	for step, s := range sizes {
		size := ConstrainSize(s, 0, spacing, width)
		slot, ok := free.fit(size)
		if !ok {
			t.Fatalf("step %d: no extent fits %+v", step, size)
		}
		frame := geom.RectFrom(slot.Origin(), size)
		trim := frame.InsetBy(-spacing, -spacing)
		free.carve(trim)
		trims = append(trims, trim)
		bottom = max(bottom, frame.Bottom())

		for i, a := range free.rects {
			for _, tr := range trims {
				if a.Intersects(tr) {
					t.Fatalf("step %d: extent %+v overlaps placed area %+v", step, a, tr)
				}
			}
			for j, b := range free.rects {
				if i != j && b.ContainsRect(a) {
					t.Fatalf("step %d: extent %+v lies inside %+v", step, a, b)
				}
			}
			if i > 0 && compareOrigin(free.rects[i-1], a) > 0 {
				t.Fatalf("step %d: extents out of order at %d", step, i)
			}
		}

		for y := 0.5; y < bottom+40; y += 5 {
			for x := 0.5; x < width; x += 5 {
				p := geom.Pt(x, y)
				if !covered(p, free.rects) && !covered(p, trims) {
					t.Fatalf("step %d: point %+v is neither free nor placed", step, p)
				}
			}
		}
	}
}

func covered(p geom.Point, rects []geom.Rect) bool {
	for _, r := range rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
