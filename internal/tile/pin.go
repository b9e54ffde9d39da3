package tile

import "github.com/grindlemire/go-gridlayout/internal/attr"

// viewState is the part of the viewport pinning depends on, in layout space.
type viewState struct {
	offset float64 // Scroll offset along the scroll axis
	extent float64 // Viewport length along the scroll axis
}

// pinnedHeader returns the header of section s adjusted so it stays at the
// top of the viewport while its section is on screen. An incoming header
// pushes it out: the pinned header never overlaps the next section's header,
// or the end of its own section when the next one has none.
func (c *Cache) pinnedHeader(s int, v viewState) *attr.Attributes {
	h := c.Sections[s].Header.Copy()
	natural := h.Frame.Y

	limit := c.Sections[s].Frame.Bottom() - h.Frame.Height
	if s+1 < len(c.Sections) && c.Sections[s+1].Header != nil {
		limit = c.Sections[s+1].Header.Frame.Y - h.Frame.Height
	}

	y := min(max(v.offset, natural), limit)
	h.Frame.Y = max(y, natural)
	if h.Frame.Y != natural {
		h.Style.ZIndex = zPinned
	}
	return h
}

// pinnedFooter mirrors pinnedHeader against the bottom edge of the viewport.
// The pinned footer never overlaps the previous section's footer, or the
// start of its own section when the previous one has none.
func (c *Cache) pinnedFooter(s int, v viewState) *attr.Attributes {
	f := c.Sections[s].Footer.Copy()
	natural := f.Frame.Y

	limit := c.Sections[s].Frame.Y
	if s > 0 && c.Sections[s-1].Footer != nil {
		limit = c.Sections[s-1].Footer.Frame.Bottom()
	}

	y := max(min(v.offset+v.extent-f.Frame.Height, natural), limit)
	f.Frame.Y = min(y, natural)
	if f.Frame.Y != natural {
		f.Style.ZIndex = zPinned
	}
	return f
}

// header returns section s's header with pinning applied when enabled.
func (c *Cache) header(s int, pin bool, v viewState) *attr.Attributes {
	if c.Sections[s].Header == nil {
		return nil
	}
	if pin {
		return c.pinnedHeader(s, v)
	}
	return c.Sections[s].Header.Copy()
}

// footer returns section s's footer with pinning applied when enabled.
func (c *Cache) footer(s int, pin bool, v viewState) *attr.Attributes {
	if c.Sections[s].Footer == nil {
		return nil
	}
	if pin {
		return c.pinnedFooter(s, v)
	}
	return c.Sections[s].Footer.Copy()
}
