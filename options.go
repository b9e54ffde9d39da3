package gridlayout

import (
	"github.com/go-logr/logr"
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/debug"
	"github.com/grindlemire/go-gridlayout/internal/masonry"
	"github.com/grindlemire/go-gridlayout/internal/tile"
)

// Option configures a layout. Options that do not apply to the layout being
// built are ignored, so one option list can be shared by both constructors.
type Option func(*options) error

type options struct {
	tile    tile.Config
	masonry masonry.Config
	log     logr.Logger
	logSet  bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		tile:    tile.DefaultConfig(),
		masonry: masonry.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if !o.logSet {
		o.log = debug.Logger()
	}
	return o, nil
}

// WithSpacing sets the gap between tiles and between masonry columns.
func WithSpacing(s float64) Option {
	return func(o *options) error {
		if s < 0 {
			return xerrors.Errorf("spacing %v: %w", s, ErrInvalidSpacing)
		}
		o.tile.Spacing = s
		o.masonry.Spacing = s
		return nil
	}
}

// WithGridSize quantizes tile sizes to multiples of g. Values <= 1 disable
// quantization.
func WithGridSize(g float64) Option {
	return func(o *options) error {
		o.tile.GridSize = g
		return nil
	}
}

// WithSectionInsets sets the tile section insets.
func WithSectionInsets(in Insets) Option {
	return func(o *options) error {
		o.tile.SectionInsets = in
		return nil
	}
}

// WithHeaderHeight enables tile section headers of height h.
func WithHeaderHeight(h float64) Option {
	return func(o *options) error {
		o.tile.HeaderHeight = h
		return nil
	}
}

// WithFooterHeight enables tile section footers of height h.
func WithFooterHeight(h float64) Option {
	return func(o *options) error {
		o.tile.FooterHeight = h
		return nil
	}
}

// WithPinnedHeaders keeps tile section headers on screen while their
// section is visible.
func WithPinnedHeaders(pin bool) Option {
	return func(o *options) error {
		o.tile.PinHeaders = pin
		return nil
	}
}

// WithPinnedFooters keeps tile section footers on screen while their
// section is visible.
func WithPinnedFooters(pin bool) Option {
	return func(o *options) error {
		o.tile.PinFooters = pin
		return nil
	}
}

// WithOrientation sets the tile scroll axis.
func WithOrientation(a Axis) Option {
	return func(o *options) error {
		o.tile.Orientation = a
		return nil
	}
}

// WithColumns fixes the masonry column count.
func WithColumns(n int) Option {
	return func(o *options) error {
		o.masonry.Columns = n
		return nil
	}
}

// WithMinColumnWidth derives the masonry column count from the view width.
func WithMinColumnWidth(w float64) Option {
	return func(o *options) error {
		o.masonry.MinColumnWidth = w
		return nil
	}
}

// WithColumnSpeeds sets a scroll speed per masonry column.
func WithColumnSpeeds(speeds ...float64) Option {
	return func(o *options) error {
		o.masonry.Speeds = append([]float64(nil), speeds...)
		return nil
	}
}

// WithCellSpacing sets the vertical gap between items in a masonry column.
func WithCellSpacing(s float64) Option {
	return func(o *options) error {
		if s < 0 {
			return xerrors.Errorf("cell spacing %v: %w", s, ErrInvalidSpacing)
		}
		o.masonry.CellSpacing = s
		return nil
	}
}

// WithPadding sets the masonry padding.
func WithPadding(p Insets) Option {
	return func(o *options) error {
		o.masonry.Padding = p
		return nil
	}
}

// WithRetainPrevious keeps the previous generation so it can be queried
// through UsePrevious.
func WithRetainPrevious(keep bool) Option {
	return func(o *options) error {
		o.tile.RetainPrevious = keep
		o.masonry.RetainPrevious = keep
		return nil
	}
}

// WithLogger sets the logger. By default layouts log to the file named by
// GRIDLAYOUT_DEBUG, or nowhere.
func WithLogger(l logr.Logger) Option {
	return func(o *options) error {
		o.log = l
		o.logSet = true
		return nil
	}
}
