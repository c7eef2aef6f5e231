package hexgrid

// lineWalk lazily enumerates successive (tile index, screen position)
// pairs along a single row or column of the grid. Each step adds a
// fixed tile increment and a fixed pixel increment; the walk ends when
// the screen position reaches the far pixel edge or the tile index
// reaches its limit, whichever comes first. Positions are re-derived
// incrementally rather than through the full transform, which keeps
// the hot traversal loop to two additions per tile.
//
// The zero value is an exhausted walk. A walk is restartable via
// restart, which rewinds it to its first pair.
type lineWalk struct {
	tile Point
	pos  Point

	tileStep Point
	posStep  Point

	// alongX selects which components the limits apply to.
	alongX bool

	// posLimit is the far pixel edge. A pair at posLimit exactly is
	// yielded only when includeEdge is set; anything past it never is.
	posLimit    int
	includeEdge bool

	// tileLimit is the exclusive tile-index bound.
	tileLimit int

	startTile Point
	startPos  Point
}

func newLineWalk(tile, pos, tileStep, posStep Point, alongX bool, posLimit, tileLimit int, includeEdge bool) lineWalk {
	return lineWalk{
		tile:        tile,
		pos:         pos,
		tileStep:    tileStep,
		posStep:     posStep,
		alongX:      alongX,
		posLimit:    posLimit,
		includeEdge: includeEdge,
		tileLimit:   tileLimit,
		startTile:   tile,
		startPos:    pos,
	}
}

// next returns the walk's current pair and advances, or ok=false once
// either limit has been passed.
func (w *lineWalk) next() (tile, pos Point, ok bool) {
	var posAt, tileAt int
	if w.alongX {
		posAt, tileAt = w.pos.X, w.tile.X
	} else {
		posAt, tileAt = w.pos.Y, w.tile.Y
	}

	if tileAt >= w.tileLimit {
		return Point{}, Point{}, false
	}
	if posAt > w.posLimit || (posAt == w.posLimit && !w.includeEdge) {
		return Point{}, Point{}, false
	}

	tile, pos = w.tile, w.pos
	w.tile = w.tile.Add(w.tileStep)
	w.pos = w.pos.Add(w.posStep)
	return tile, pos, true
}

// restart rewinds the walk to its first pair.
func (w *lineWalk) restart() {
	w.tile = w.startTile
	w.pos = w.startPos
}

// drawOrigin computes the tile the traversal of an exposed rectangle
// starts from: the tile under the rectangle's top-left corner, stepped
// up and/or left by one when that corner falls in the tile's upper or
// left half, since a partially visible neighbor then reaches into the
// exposed area from above or from the left.
func drawOrigin(r *Renderer, p renderParams, exposed Rect, ws Workspace) Point {
	start := r.ScreenToTile(float64(exposed.Min.X), float64(exposed.Min.Y), ws)
	pos := r.TileToScreen(float64(start.X), float64(start.Y), ws)

	if exposed.Min.Y-pos.Y < p.sideOffsetY {
		start.Y--
	}
	if exposed.Min.X-pos.X < p.sideOffsetX {
		start.X--
	}
	return start
}
