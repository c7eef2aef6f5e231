package hexgrid

import "image"

// Cell is the content of one tile position. The renderer only needs
// to know whether there is anything to draw; everything else is
// optional capability.
type Cell interface {
	// Empty reports whether the cell has no content. Empty cells are
	// skipped by DrawTileLayer.
	Empty() bool
}

// SizedCell is an optional interface for cells with an intrinsic
// pixel size. Cells without one are drawn at the workspace's base
// tile size.
type SizedCell interface {
	Cell

	// Size returns the cell content's intrinsic size in pixels.
	Size() Size
}

// ImageCell is an optional interface for cells whose content is pixel
// data. Blitting backends use it; command-recording backends may not
// need it.
type ImageCell interface {
	Cell

	// Image returns the cell's pixel content.
	Image() image.Image
}

// TileLayer is the read-only layer abstraction DrawTileLayer consumes.
// Cell coordinates are layer-local: CellAt(Pt(0, 0)) is the layer's
// own top-left cell regardless of Position.
type TileLayer interface {
	// Bounds returns the layer extent in tile coordinates, including
	// the position offset.
	Bounds() Rect

	// Position returns the layer's tile-coordinate offset within the
	// map.
	Position() Point

	// Width returns the layer width in tiles.
	Width() int

	// Height returns the layer height in tiles.
	Height() int

	// CellAt returns the cell at a layer-local tile coordinate. The
	// coordinate is always within [0, Width) x [0, Height).
	CellAt(tile Point) Cell
}

// cellSize resolves a cell's draw size, falling back to the base tile
// size when the cell has no intrinsic one.
func cellSize(cell Cell, ws Workspace) Size {
	if sc, ok := cell.(SizedCell); ok {
		if s := sc.Size(); !s.Empty() {
			return s
		}
	}
	return ws.TileSize()
}

// DrawTileLayer blits every non-empty cell of the layer that is
// visible inside the exposed pixel rectangle, anchored at the tile's
// bottom-left corner. An empty exposed rectangle means the layer's
// full bounding rectangle.
//
// The workspace contributes the base tile size; the traversal extent
// comes from the layer itself.
func (r *Renderer) DrawTileLayer(s Surface, layer TileLayer, ws Workspace, exposed Rect) {
	tileWS := Workspace{
		Width:      layer.Width(),
		Height:     layer.Height(),
		TileWidth:  ws.TileWidth,
		TileHeight: ws.TileHeight,
	}
	p := newRenderParams(r.cfg, tileWS)

	rect := exposed
	if rect.Empty() {
		rect = r.BoundingRect(layer.Bounds(), tileWS)
	}

	// Content is anchored bottom-left, so cells taller than the base
	// tile reach upward into the exposed area.
	rect.Min.Y -= p.tileHeight

	startTile := drawOrigin(r, p, rect, tileWS).Sub(layer.Position())

	if p.staggerX {
		// Allow one off-grid partial tile on each axis; rows of the
		// wrong parity enter the grid one interleave pass later.
		startTile.X = max(-1, startTile.X)
		startTile.Y = max(-1, startTile.Y)

		startPos := r.tileOrigin(startTile.Add(layer.Position()), tileWS)
		startPos.Y += p.tileHeight

		staggeredRow := p.doStaggerX(startTile.X + layer.Position().X)

		for startPos.Y <= rect.Max.Y && startTile.Y < layer.Height() {
			row := newLineWalk(startTile, startPos,
				Pt(2, 0), Pt(p.tileWidth+p.sideLengthX, 0),
				true, rect.Max.X, layer.Width(), false)

			for tile, pos, ok := row.next(); ok; tile, pos, ok = row.next() {
				if tile.X < 0 || tile.Y < 0 {
					continue
				}
				cell := layer.CellAt(tile)
				if cell == nil || cell.Empty() {
					continue
				}
				s.DrawCell(cell, pos, cellSize(cell, tileWS))
			}

			// Adjacent tiles along the cross axis interleave in
			// screen space: alternate between the pushed and the
			// unpushed half-row, advancing the tile row every other
			// pass.
			if staggeredRow {
				startTile.X--
				startTile.Y++
				startPos.X -= p.columnWidth
				staggeredRow = false
			} else {
				startTile.X++
				startPos.X += p.columnWidth
				staggeredRow = true
			}

			startPos.Y += p.rowHeight
		}
	} else {
		startTile.X = max(0, startTile.X)
		startTile.Y = max(0, startTile.Y)

		startPos := r.tileOrigin(startTile.Add(layer.Position()), tileWS)
		startPos.Y += p.tileHeight

		// Row shifting is applied per row in the loop, so un-apply it
		// from the start position here.
		if p.doStaggerY(startTile.Y + layer.Position().Y) {
			startPos.X -= p.columnWidth
		}

		for ; startPos.Y <= rect.Max.Y && startTile.Y < layer.Height(); startTile.Y++ {
			rowPos := startPos
			if p.doStaggerY(startTile.Y + layer.Position().Y) {
				rowPos.X += p.columnWidth
			}

			row := newLineWalk(startTile, rowPos,
				Pt(1, 0), Pt(p.tileWidth+p.sideLengthX, 0),
				true, rect.Max.X, layer.Width(), false)

			for tile, pos, ok := row.next(); ok; tile, pos, ok = row.next() {
				cell := layer.CellAt(tile)
				if cell == nil || cell.Empty() {
					continue
				}
				s.DrawCell(cell, pos, cellSize(cell, tileWS))
			}

			startPos.Y += p.rowHeight
		}
	}
}

// tileOrigin is TileToScreen for an integer tile coordinate.
func (r *Renderer) tileOrigin(tile Point, ws Workspace) Point {
	return r.TileToScreen(float64(tile.X), float64(tile.Y), ws)
}
