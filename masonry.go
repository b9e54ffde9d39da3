package gridlayout

import (
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout/internal/masonry"
)

// MasonryLayout balances items into columns that may scroll at different
// speeds.
type MasonryLayout = masonry.Layout

// NewMasonryLayout creates a masonry layout for h. The host must also
// implement HeightProvider before the layout is prepared.
func NewMasonryLayout(h Host, opts ...Option) (*MasonryLayout, error) {
	if h == nil {
		return nil, ErrNilHost
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, xerrors.Errorf("masonry layout: %w", err)
	}
	if err := o.masonry.Validate(); err != nil {
		return nil, xerrors.Errorf("masonry layout: %w", err)
	}
	return masonry.New(h, o.masonry, o.log), nil
}
