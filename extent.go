package hexgrid

// GridSize returns the total pixel footprint of the workspace's full
// width x height grid. The size is the same regardless of which
// indexes are shifted, except that a grid with more than one
// row/column along the stagger axis grows by one half-pitch for the
// staggered rows/columns that protrude past the naive extent.
func (r *Renderer) GridSize(ws Workspace) Size {
	p := newRenderParams(r.cfg, ws)

	if p.staggerX {
		size := Size{
			W: ws.Width*p.columnWidth + p.sideOffsetX,
			H: ws.Height * (p.tileHeight + p.sideLengthY),
		}
		if ws.Width > 1 {
			size.H += p.rowHeight
		}
		return size
	}

	size := Size{
		W: ws.Width * (p.tileWidth + p.sideLengthX),
		H: ws.Height*p.rowHeight + p.sideOffsetY,
	}
	if ws.Height > 1 {
		size.W += p.columnWidth
	}
	return size
}

// BoundingRect returns the pixel bounding rectangle of an axis-aligned
// tile-index rectangle. When the rectangle's first row/column along
// the stagger axis is itself rendered in a pushed position, the top
// left shifts up/left by one half-pitch to cover the half row/column
// sticking out past the naive top-left tile.
func (r *Renderer) BoundingRect(tiles Rect, ws Workspace) Rect {
	p := newRenderParams(r.cfg, ws)

	topLeft := r.TileToScreen(float64(tiles.Min.X), float64(tiles.Min.Y), ws)
	var width, height int

	if p.staggerX {
		width = tiles.Dx()*p.columnWidth + p.sideOffsetX
		height = tiles.Dy() * (p.tileHeight + p.sideLengthY)

		if tiles.Dx() > 1 {
			height += p.rowHeight
			if p.doStaggerX(tiles.Min.X) {
				topLeft.Y -= p.rowHeight
			}
		}
	} else {
		width = tiles.Dx() * (p.tileWidth + p.sideLengthX)
		height = tiles.Dy()*p.rowHeight + p.sideOffsetY

		if tiles.Dy() > 1 {
			width += p.columnWidth
			if p.doStaggerY(tiles.Min.Y) {
				topLeft.X -= p.columnWidth
			}
		}
	}

	return RcSized(topLeft.X, topLeft.Y, width, height)
}
