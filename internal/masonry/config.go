package masonry

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/geom"
)

var (
	ErrInvalidColumns = xerrors.New("column count must be positive, or derived from a positive minimum width")
	ErrInvalidSpacing = xerrors.New("spacing must not be negative")
	ErrInvalidSpeed   = xerrors.New("column speed must be positive")
	ErrInvalidPadding = xerrors.New("padding must not be negative")
)

// Config is the immutable configuration of a masonry layout.
type Config struct {
	// Columns fixes the column count. Zero derives it from MinColumnWidth.
	Columns        int
	MinColumnWidth float64

	Spacing     float64 // Between columns and at both side edges
	CellSpacing float64 // Between items in one column

	// Padding surrounds the columns. Top and Bottom offset the first item and
	// extend the content; Left and Right narrow the available width.
	Padding geom.Insets

	// Speeds holds a scroll speed multiplier per column. Columns past the end
	// of the slice scroll at speed 1.
	Speeds []float64

	// RetainPrevious keeps the last generation for old data set queries.
	RetainPrevious bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinColumnWidth: 150,
		Spacing:        10,
		CellSpacing:    10,
	}
}

// Speed returns the scroll speed of column i.
func (c Config) Speed(i int) float64 {
	if i < len(c.Speeds) {
		return c.Speeds[i]
	}
	return 1
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Columns < 0 {
		return xerrors.Errorf("columns %d: %w", c.Columns, ErrInvalidColumns)
	}
	if c.Columns == 0 && c.MinColumnWidth <= 0 {
		return xerrors.Errorf("min column width %v: %w", c.MinColumnWidth, ErrInvalidColumns)
	}
	if c.Spacing < 0 || c.CellSpacing < 0 {
		return xerrors.Errorf("spacing %v, cell spacing %v: %w", c.Spacing, c.CellSpacing, ErrInvalidSpacing)
	}
	for i, s := range c.Speeds {
		if s <= 0 {
			return xerrors.Errorf("column %d speed %v: %w", i, s, ErrInvalidSpeed)
		}
	}
	p := c.Padding
	if p.Top < 0 || p.Left < 0 || p.Bottom < 0 || p.Right < 0 {
		return xerrors.Errorf("padding %+v: %w", p, ErrInvalidPadding)
	}
	return nil
}
