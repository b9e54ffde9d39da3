package geom

// Insets represents values for four sides of a box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// InsetAll creates Insets with the same value on all sides.
func InsetAll(n float64) Insets {
	return Insets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetSymmetric creates Insets with vertical (top/bottom) and horizontal (left/right) values.
func InsetSymmetric(v, h float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

// Transpose swaps the top/left and bottom/right pairs.
func (in Insets) Transpose() Insets {
	return Insets{Top: in.Left, Left: in.Top, Bottom: in.Right, Right: in.Bottom}
}

// IsZero returns true if all inset values are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}
