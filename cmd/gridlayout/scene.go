package main

import (
	"encoding/json"
	"os"

	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout"
)

// Scene is the JSON input of the CLI: the data set plus layout settings.
//
//	{
//	  "spacing": 10,
//	  "headerHeight": 30,
//	  "sections": [[[100, 100], [200, 100]], [[100, 50]]]
//	}
//
// Each item is a [width, height] pair. The masonry layout reads only the
// height.
type Scene struct {
	Sections [][][2]float64 `json:"sections"`

	Spacing        *float64  `json:"spacing,omitempty"`
	GridSize       float64   `json:"gridSize,omitempty"`
	Insets         float64   `json:"insets,omitempty"`
	HeaderHeight   float64   `json:"headerHeight,omitempty"`
	FooterHeight   float64   `json:"footerHeight,omitempty"`
	PinHeaders     bool      `json:"pinHeaders,omitempty"`
	PinFooters     bool      `json:"pinFooters,omitempty"`
	Horizontal     bool      `json:"horizontal,omitempty"`
	Columns        int       `json:"columns,omitempty"`
	MinColumnWidth float64   `json:"minColumnWidth,omitempty"`
	CellSpacing    *float64  `json:"cellSpacing,omitempty"`
	Speeds         []float64 `json:"speeds,omitempty"`
}

func loadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading scene: %w", err)
	}
	return parseScene(data)
}

func parseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, xerrors.Errorf("parsing scene: %w", err)
	}
	for i, sec := range s.Sections {
		for j, it := range sec {
			if it[0] < 0 || it[1] < 0 {
				return nil, xerrors.Errorf("section %d item %d: negative size %v", i, j, it)
			}
		}
	}
	return &s, nil
}

// Options converts the scene settings to layout options.
func (s *Scene) Options() []gridlayout.Option {
	opts := []gridlayout.Option{
		gridlayout.WithGridSize(s.GridSize),
		gridlayout.WithSectionInsets(gridlayout.InsetAll(s.Insets)),
		gridlayout.WithHeaderHeight(s.HeaderHeight),
		gridlayout.WithFooterHeight(s.FooterHeight),
		gridlayout.WithPinnedHeaders(s.PinHeaders),
		gridlayout.WithPinnedFooters(s.PinFooters),
		gridlayout.WithColumns(s.Columns),
		gridlayout.WithColumnSpeeds(s.Speeds...),
	}
	if s.Spacing != nil {
		opts = append(opts, gridlayout.WithSpacing(*s.Spacing))
	}
	if s.CellSpacing != nil {
		opts = append(opts, gridlayout.WithCellSpacing(*s.CellSpacing))
	}
	if s.MinColumnWidth > 0 {
		opts = append(opts, gridlayout.WithMinColumnWidth(s.MinColumnWidth))
	}
	if s.Horizontal {
		opts = append(opts, gridlayout.WithOrientation(gridlayout.Horizontal))
	}
	return opts
}

// sceneHost serves a Scene to a layout through a fixed viewport.
type sceneHost struct {
	scene  *Scene
	view   gridlayout.Rect
	scroll gridlayout.Point
}

func newSceneHost(s *Scene, v Viewport) *sceneHost {
	h := &sceneHost{scene: s}
	if s.Horizontal {
		h.scroll = gridlayout.Pt(v.Scroll, 0)
	} else {
		h.scroll = gridlayout.Pt(0, v.Scroll)
	}
	h.view = gridlayout.NewRect(h.scroll.X, h.scroll.Y, v.Width, v.Height)
	return h
}

func (h *sceneHost) NumberOfSections() int { return len(h.scene.Sections) }

func (h *sceneHost) NumberOfItemsInSection(section int) int {
	return len(h.scene.Sections[section])
}

func (h *sceneHost) Frame() gridlayout.Rect { return h.view }

func (h *sceneHost) ScrollOffset() gridlayout.Point { return h.scroll }

func (h *sceneHost) SizeForItem(p gridlayout.IndexPath, _ float64) gridlayout.Size {
	it := h.scene.Sections[p.Section][p.Row]
	return gridlayout.Sz(it[0], it[1])
}

func (h *sceneHost) HeightForItem(p gridlayout.IndexPath, _ float64) float64 {
	return h.scene.Sections[p.Section][p.Row][1]
}
