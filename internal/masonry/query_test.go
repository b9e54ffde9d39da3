package masonry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-gridlayout/internal/attr"
	"github.com/grindlemire/go-gridlayout/internal/geom"
	"github.com/grindlemire/go-gridlayout/internal/host/hosttest"
)

// sixItems places six 100 tall items into twoSpeedConfig columns:
//
//	column 0 (speed 1): 1 at y 0, 4 at y 100
//	column 1 (speed 2): 0 at y 0, 2 at y 100, 3 at y 200, 5 at y 300
func sixItems(t *testing.T) *Columns {
	t.Helper()
	h := hosttest.New(320, 200, hosttest.Heights(100, 100, 100, 100, 100, 100))
	c := Place(h, h, twoSpeedConfig(), h.View.Size())
	if diff := cmp.Diff([][]int{{1, 4}, {0, 2, 3, 5}}, columnsOf(c)); diff != "" {
		t.Fatalf("unexpected placement (-want +got):\n%s", diff)
	}
	return c
}

func TestAdjustment(t *testing.T) {
	type tc struct {
		speed, scrollY float64
		expected       float64
	}

	tests := map[string]tc{
		"full speed":   {speed: 1, scrollY: 250, expected: 0},
		"double speed": {speed: 2, scrollY: 100, expected: -100},
		"half speed":   {speed: 0.5, scrollY: 100, expected: 50},
		"not scrolled": {speed: 3, scrollY: 0, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Adjustment(tt.speed, tt.scrollY); got != tt.expected {
				t.Errorf("Adjustment(%v, %v) = %v, want %v", tt.speed, tt.scrollY, got, tt.expected)
			}
		})
	}
}

func TestAdjustment_UnitSpeedIsAlwaysZero(t *testing.T) {
	for _, y := range []float64{0, 0.1, 1, 33.3, 1e3, 123456.789, -42, 1e12} {
		if got := Adjustment(1, y); got != 0 {
			t.Errorf("Adjustment(1, %v) = %v, want 0", y, got)
		}
	}

	cfg := DefaultConfig()
	cfg.Columns = 3
	h := hosttest.New(500, 300, hosttest.Heights(40, 90, 60, 120, 30, 70, 50))
	c := Place(h, h, cfg, h.View.Size())
	for _, y := range []float64{0, 55, 310.5} {
		for row := 0; row < 7; row++ {
			moved, _ := Item(c, y, attr.Path(0, row))
			base, _ := Item(c, 0, attr.Path(0, row))
			if moved.Frame != base.Frame {
				t.Errorf("item %d at scroll %v = %+v, want %+v", row, y, moved.Frame, base.Frame)
			}
		}
	}
}

func TestQuery(t *testing.T) {
	c := sixItems(t)

	type span struct {
		Row int
		Y   float64
	}

	type tc struct {
		scrollY  float64
		rect     geom.Rect
		expected []span
	}

	tests := map[string]tc{
		"not scrolled": {
			scrollY:  0,
			rect:     geom.NewRect(0, 0, 320, 200),
			expected: []span{{0, 0}, {1, 0}, {2, 100}, {4, 100}},
		},
		"fast column runs ahead": {
			scrollY:  100,
			rect:     geom.NewRect(0, 100, 320, 150),
			expected: []span{{3, 100}, {4, 100}, {5, 200}},
		},
		"one column only": {
			scrollY:  100,
			rect:     geom.NewRect(0, 100, 150, 150),
			expected: []span{{4, 100}},
		},
		"between columns": {
			scrollY:  0,
			rect:     geom.NewRect(155, 0, 10, 400),
			expected: []span{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := []span{}
			for _, a := range Query(c, tt.scrollY, tt.rect) {
				got = append(got, span{a.IndexPath.Row, a.Frame.Y})
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_DoesNotMutatePlacement(t *testing.T) {
	c := sixItems(t)
	Query(c, 100, geom.NewRect(0, 0, 320, 1000))
	if got := c.Columns[1].Items[0].Frame.Y; got != 0 {
		t.Errorf("placed frame moved to %v", got)
	}
}

func TestItem(t *testing.T) {
	c := sixItems(t)

	type tc struct {
		path     attr.IndexPath
		scrollY  float64
		expected float64
		ok       bool
	}

	tests := map[string]tc{
		"slow column":  {path: attr.Path(0, 4), scrollY: 100, expected: 100, ok: true},
		"fast column":  {path: attr.Path(0, 5), scrollY: 100, expected: 200, ok: true},
		"missing row":  {path: attr.Path(0, 6)},
		"missing path": {path: attr.Path(1, 0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, ok := Item(c, tt.scrollY, tt.path)
			if ok != tt.ok {
				t.Fatalf("Item(%v) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && a.Frame.Y != tt.expected {
				t.Errorf("Item(%v) y = %v, want %v", tt.path, a.Frame.Y, tt.expected)
			}
		})
	}
}
