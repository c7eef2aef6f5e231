package hexgrid

import "math"

// TileToScreen converts tile to screen coordinates, truncating the
// inputs to whole tile indices. The result is the pixel origin of the
// tile's bounding box; the hexagon's center sits half a tile size
// further right and down. The arithmetic is exact integer math, so the
// mapping is monotonic in each index while the other is held fixed.
func (r *Renderer) TileToScreen(x, y float64, ws Workspace) Point {
	p := newRenderParams(r.cfg, ws)
	tileX := int(math.Floor(x))
	tileY := int(math.Floor(y))

	var px, py int
	if p.staggerX {
		py = tileY * (p.tileHeight + p.sideLengthY)
		if p.doStaggerX(tileX) {
			py += p.rowHeight
		}
		px = tileX * p.columnWidth
	} else {
		px = tileX * (p.tileWidth + p.sideLengthX)
		if p.doStaggerY(tileY) {
			px += p.columnWidth
		}
		py = tileY * p.rowHeight
	}

	return Point{X: px, Y: py}
}

// Candidate tile offsets relative to the reference tile, indexed by
// nearest center. Index order is the tie-break: when two centers are
// exactly equidistant the lower index wins.
var (
	offsetsStaggerX = [4]Point{
		{0, 0},
		{+1, -1},
		{+1, 0},
		{+2, 0},
	}
	offsetsStaggerY = [4]Point{
		{0, 0},
		{-1, +1},
		{0, +1},
		{0, +2},
	}
)

// ScreenToTile converts screen to tile coordinates. Sub-tile return
// values are not supported; the result is always a whole tile.
//
// There is no algebraic inverse because neighboring hexagons overlap
// in their bounding boxes. Instead the point is located within a
// coarse double-tile cell and classified against the four candidate
// hexagon centers reachable from that cell, nearest center winning.
func (r *Renderer) ScreenToTile(x, y float64, ws Workspace) Point {
	p := newRenderParams(r.cfg, ws)

	// Align even-parity grids with the odd-parity reference layout.
	if p.staggerX {
		if p.staggerEven {
			x -= float64(p.tileWidth)
		} else {
			x -= float64(p.sideOffsetX)
		}
	} else {
		if p.staggerEven {
			y -= float64(p.tileHeight)
		} else {
			y -= float64(p.sideOffsetY)
		}
	}

	// Coordinates of the grid-aligned reference tile.
	refX := int(math.Floor(x / float64(p.columnWidth*2)))
	refY := int(math.Floor(y / float64(p.rowHeight*2)))

	// Relative position on the reference tile's base square.
	relX := x - float64(refX*p.columnWidth*2)
	relY := y - float64(refY*p.rowHeight*2)

	// Undo the double-cell compression along the stagger axis.
	if p.staggerX {
		refX *= 2
		if p.staggerEven {
			refX++
		}
	} else {
		refY *= 2
		if p.staggerEven {
			refY++
		}
	}

	var centers [4]Point
	if p.staggerX {
		left := p.sideLengthX / 2
		centerX := left + p.columnWidth
		centerY := p.tileHeight / 2

		centers[0] = Point{left, centerY}
		centers[1] = Point{centerX, centerY - p.rowHeight}
		centers[2] = Point{centerX, centerY + p.rowHeight}
		centers[3] = Point{centerX + p.columnWidth, centerY}
	} else {
		top := p.sideLengthY / 2
		centerX := p.tileWidth / 2
		centerY := top + p.rowHeight

		centers[0] = Point{centerX, top}
		centers[1] = Point{centerX - p.columnWidth, centerY}
		centers[2] = Point{centerX + p.columnWidth, centerY}
		centers[3] = Point{centerX, centerY + p.rowHeight}
	}

	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centers {
		dx := float64(c.X) - relX
		dy := float64(c.Y) - relY
		if d := dx*dx + dy*dy; d < minDist {
			minDist = d
			nearest = i
		}
	}

	offsets := &offsetsStaggerY
	if p.staggerX {
		offsets = &offsetsStaggerX
	}
	return Point{X: refX + offsets[nearest].X, Y: refY + offsets[nearest].Y}
}
