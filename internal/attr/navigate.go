package attr

// Direction is a keyboard navigation direction in view space.
type Direction uint8

const (
	Left Direction = iota
	Right
	Above
	Below
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Above:
		return "above"
	case Below:
		return "below"
	}
	return "unknown"
}

// Between returns every index path from a to b inclusive, in data order.
// The caller orders a before b. count reports the rows of a section and is
// only called for sections in [0, sections); rows outside a section are
// skipped.
func Between(a, b IndexPath, sections int, count func(section int) int) []IndexPath {
	var out []IndexPath
	for s := max(a.Section, 0); s <= b.Section && s < sections; s++ {
		start, end := 0, count(s)-1
		if s == a.Section {
			start = max(a.Row, 0)
		}
		if s == b.Section {
			end = min(b.Row, end)
		}
		for r := start; r <= end; r++ {
			out = append(out, IndexPath{Section: s, Row: r})
		}
	}
	return out
}
