package gridlayout

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/tile"
)

// TileLayout packs items of arbitrary size into the free space of each
// section, with optional headers and footers.
type TileLayout = tile.Layout

// NewTileLayout creates a tile layout for h. The host must also implement
// SizeProvider before the layout is prepared.
func NewTileLayout(h Host, opts ...Option) (*TileLayout, error) {
	if h == nil {
		return nil, ErrNilHost
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, xerrors.Errorf("tile layout: %w", err)
	}
	if err := o.tile.Validate(); err != nil {
		return nil, xerrors.Errorf("tile layout: %w", err)
	}
	return tile.New(h, o.tile, o.log), nil
}
