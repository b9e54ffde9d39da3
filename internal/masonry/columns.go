package masonry

// Metrics is the horizontal geometry shared by all columns.
type Metrics struct {
	Count int
	Width float64
}

// ColumnMetrics splits available into equal columns with spacing between
// them and at both edges. A positive count is used as is. Otherwise the
// count is the number of minWidth columns that fit, and never less than one.
func ColumnMetrics(available float64, count int, minWidth, spacing float64) Metrics {
	if count <= 0 {
		count = int(available / minWidth)
		if float64(count)*minWidth+float64(count+1)*spacing > available {
			count--
		}
		count = max(1, count)
	}
	width := (available - float64(count+1)*spacing) / float64(count)
	return Metrics{Count: count, Width: max(0, width)}
}

// X returns the left edge of column i, given the left edge of the area.
func (m Metrics) X(left, spacing float64, i int) float64 {
	return left + spacing + float64(i)*(m.Width+spacing)
}
