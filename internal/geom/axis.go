package geom

// Axis names the direction content scrolls in.
type Axis uint8

const (
	Vertical   Axis = iota // Content grows downwards
	Horizontal             // Content grows to the right
)

// Swap returns the other axis.
func (a Axis) Swap() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Main returns the coordinate of p along the axis.
func (a Axis) Main(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Lerp linearly interpolates between a and b. A fraction of 0 yields a and
// a fraction of 1 yields b; fractions outside [0, 1] extrapolate.
func Lerp(a, b, fraction float64) float64 {
	return a + (b-a)*fraction
}

// LerpPoint interpolates both coordinates of a point.
func LerpPoint(a, b Point, fraction float64) Point {
	return Point{X: Lerp(a.X, b.X, fraction), Y: Lerp(a.Y, b.Y, fraction)}
}

// LerpSize interpolates both dimensions of a size.
func LerpSize(a, b Size, fraction float64) Size {
	return Size{Width: Lerp(a.Width, b.Width, fraction), Height: Lerp(a.Height, b.Height, fraction)}
}
