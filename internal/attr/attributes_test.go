package attr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-gridlayout/internal/geom"
)

func TestIndexPath_Compare(t *testing.T) {
	type tc struct {
		a, b     IndexPath
		expected int
	}

	tests := map[string]tc{
		"equal":           {a: Path(1, 2), b: Path(1, 2), expected: 0},
		"earlier row":     {a: Path(1, 1), b: Path(1, 2), expected: -1},
		"later section":   {a: Path(2, 0), b: Path(1, 9), expected: 1},
		"earlier section": {a: Path(0, 9), b: Path(1, 0), expected: -1},
		"later row":       {a: Path(0, 3), b: Path(0, 2), expected: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAttributes_CopyIsIndependent(t *testing.T) {
	a := New(Path(0, 1), Cell)
	a.Frame = geom.NewRect(1, 2, 3, 4)

	c := a.Copy()
	c.Frame.Y = 100

	if a.Frame.Y != 2 {
		t.Errorf("original frame mutated through copy: Y = %v", a.Frame.Y)
	}
	if c.IndexPath != a.IndexPath {
		t.Errorf("copy IndexPath = %v, want %v", c.IndexPath, a.IndexPath)
	}
}

func TestAttributes_Interpolate(t *testing.T) {
	from := New(Path(0, 0), Cell)
	from.Frame = geom.NewRect(0, 0, 10, 10)
	from.Style.Opacity = 0
	from.Style.ZIndex = 1

	to := New(Path(0, 3), Cell)
	to.Frame = geom.NewRect(100, 100, 20, 20)
	to.Style.ZIndex = 5

	got := from.Interpolate(to, 0.5)
	want := &Attributes{
		IndexPath: Path(0, 3),
		Type:      Cell,
		Frame:     geom.NewRect(50, 50, 15, 15),
		Style:     Style{Opacity: 0.5, Scale: 1, ZIndex: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Interpolate() mismatch (-want +got):\n%s", diff)
	}

	if z := from.Interpolate(to, 0.25).Style.ZIndex; z != 1 {
		t.Errorf("ZIndex below half = %d, want 1", z)
	}
}

func TestAttributes_Equal(t *testing.T) {
	a := NewSupplementary(2, KindHeader)
	b := a.Copy()
	if !a.Equal(b) {
		t.Error("copy should be equal")
	}
	b.Style.Blur = 2
	if a.Equal(b) {
		t.Error("differing style should not be equal")
	}
	var nilAttrs *Attributes
	if nilAttrs.Equal(a) {
		t.Error("nil should not equal non-nil")
	}
}
