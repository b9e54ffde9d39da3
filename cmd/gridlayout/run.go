package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/go-logr/stdr"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"

	"github.com/grindlemire/go-gridlayout"
)

// Viewport is the view the scene is laid out in.
type Viewport struct {
	Width  float64 `envconfig:"WIDTH" default:"320"`
	Height float64 `envconfig:"HEIGHT" default:"480"`
	Scroll float64 `envconfig:"SCROLL" default:"0"`
}

func loadViewport() (Viewport, error) {
	var v Viewport
	if err := envconfig.Process("GRIDLAYOUT", &v); err != nil {
		return Viewport{}, xerrors.Errorf("viewport: %w", err)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return Viewport{}, xerrors.Errorf("viewport %vx%v must have a positive size", v.Width, v.Height)
	}
	return v, nil
}

// run implements the tile and masonry subcommands.
func run(kind string, args []string, w io.Writer) error {
	verbose := false
	visible := false
	var path string

	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-visible", "--visible":
			visible = true
		default:
			if path != "" {
				return xerrors.Errorf("unexpected argument %q", arg)
			}
			path = arg
		}
	}
	if path == "" {
		return xerrors.New("no scene file given")
	}

	scene, err := loadScene(path)
	if err != nil {
		return err
	}
	v, err := loadViewport()
	if err != nil {
		return err
	}

	opts := scene.Options()
	if verbose {
		stdr.SetVerbosity(2)
		opts = append(opts, gridlayout.WithLogger(stdr.New(log.New(os.Stderr, "", log.Ltime))))
	}
	return render(w, kind, newSceneHost(scene, v), visible, opts)
}

func newLayout(kind string, h gridlayout.Host, opts []gridlayout.Option) (gridlayout.Layout, error) {
	switch kind {
	case "tile":
		return gridlayout.NewTileLayout(h, opts...)
	case "masonry":
		return gridlayout.NewMasonryLayout(h, opts...)
	}
	return nil, xerrors.Errorf("unknown layout %q", kind)
}

// render prepares the layout and writes one line per attribute, followed by
// the content size.
func render(w io.Writer, kind string, h gridlayout.Host, visible bool, opts []gridlayout.Option) error {
	l, err := newLayout(kind, h, opts)
	if err != nil {
		return err
	}
	l.Prepare()

	size := l.ContentSize()
	var attrs []*gridlayout.Attributes
	if visible {
		attrs = gridlayout.VisibleItems(l, h)
	} else {
		attrs = l.AttributesInRect(gridlayout.NewRect(0, 0, size.Width, size.Height))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tKIND\tX\tY\tW\tH\tZ")
	for _, a := range attrs {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%g\t%d\n",
			a.IndexPath, describe(a), a.Frame.X, a.Frame.Y, a.Frame.Width, a.Frame.Height, a.Style.ZIndex)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "content %gx%g\n", size.Width, size.Height)
	return err
}

func describe(a *gridlayout.Attributes) string {
	switch {
	case a.Type != gridlayout.Supplementary:
		return "cell"
	case a.Kind == gridlayout.KindHeader:
		return "header"
	case a.Kind == gridlayout.KindFooter:
		return "footer"
	}
	return "supplementary"
}
