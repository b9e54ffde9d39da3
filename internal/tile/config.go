package tile

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/geom"
)

var (
	ErrInvalidGridSize = xerrors.New("grid size must not be negative")
	ErrInvalidSpacing  = xerrors.New("spacing must not be negative")
	ErrInvalidHeight   = xerrors.New("header and footer heights must not be negative")
	ErrInvalidInsets   = xerrors.New("section insets must not be negative")
)

// Config is the immutable configuration of a tile layout.
type Config struct {
	// Packing
	GridSize float64 // Quantization cell; <= 1 disables quantization
	Spacing  float64 // Gap between items, and between header/footer and body

	// Sections
	SectionInsets geom.Insets // In view coordinates
	HeaderHeight  float64     // 0 disables headers
	FooterHeight  float64     // 0 disables footers
	PinHeaders    bool
	PinFooters    bool

	// Orientation is the scroll axis. Horizontal layouts stack sections left
	// to right and pack items in columns.
	Orientation geom.Axis

	// RetainPrevious keeps the last generation for old data set queries.
	RetainPrevious bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Spacing:     10,
		Orientation: geom.Vertical,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.GridSize < 0 {
		return xerrors.Errorf("grid size %v: %w", c.GridSize, ErrInvalidGridSize)
	}
	if c.Spacing < 0 {
		return xerrors.Errorf("spacing %v: %w", c.Spacing, ErrInvalidSpacing)
	}
	if c.HeaderHeight < 0 || c.FooterHeight < 0 {
		return xerrors.Errorf("header %v, footer %v: %w", c.HeaderHeight, c.FooterHeight, ErrInvalidHeight)
	}
	in := c.SectionInsets
	if in.Top < 0 || in.Left < 0 || in.Bottom < 0 || in.Right < 0 {
		return xerrors.Errorf("insets %+v: %w", in, ErrInvalidInsets)
	}
	return nil
}
