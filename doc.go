// Package gridlayout computes item frames for virtualized list and grid views.
//
// Users import this single package for the complete public API: the host
// interfaces a view implements, the tile and masonry layouts, geometry and
// attribute types, and the invalidate/prepare/query cycle.
//
// A host invalidates a layout when its data or bounds change, calls Prepare
// once, then queries the prepared layout as often as it likes while
// scrolling:
//
//	l, err := gridlayout.NewTileLayout(view, gridlayout.WithSpacing(8))
//	if err != nil {
//		return err
//	}
//	l.Prepare()
//	for _, a := range gridlayout.VisibleItems(l, view) {
//		draw(a.IndexPath, a.Frame)
//	}
package gridlayout
