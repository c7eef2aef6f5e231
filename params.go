package hexgrid

// renderParams holds the constant geometric quantities every query
// derives from a Workspace and a StaggerConfig. Tile dimensions are
// forced even by masking the low bit so that tile midpoints land on
// whole pixels. The derivation is cheap enough to run per call, which
// keeps the package free of cached state.
type renderParams struct {
	tileWidth  int
	tileHeight int

	// Exactly one of these carries the configured side length,
	// selected by the stagger axis; the other is zero.
	sideLengthX int
	sideLengthY int

	sideOffsetX int
	sideOffsetY int

	// columnWidth and rowHeight are the half-pitches: the pixel
	// distance between a row/column and its staggered neighbor.
	columnWidth int
	rowHeight   int

	staggerX    bool
	staggerEven bool
}

func newRenderParams(cfg StaggerConfig, ws Workspace) renderParams {
	p := renderParams{
		tileWidth:   ws.TileWidth &^ 1,
		tileHeight:  ws.TileHeight &^ 1,
		staggerX:    cfg.Axis == StaggerX,
		staggerEven: cfg.Parity == StaggerEven,
	}

	if cfg.Orientation == OrientationHexagonal {
		if p.staggerX {
			p.sideLengthX = cfg.SideLength
		} else {
			p.sideLengthY = cfg.SideLength
		}
	}

	p.sideOffsetX = (p.tileWidth - p.sideLengthX) / 2
	p.sideOffsetY = (p.tileHeight - p.sideLengthY) / 2

	p.columnWidth = p.sideOffsetX + p.sideLengthX
	p.rowHeight = p.sideOffsetY + p.sideLengthY

	return p
}

// doStaggerX reports whether column x is pushed down by rowHeight.
func (p renderParams) doStaggerX(x int) bool {
	return p.staggerX && (x&1 == 1) != p.staggerEven
}

// doStaggerY reports whether row y is pushed right by columnWidth.
func (p renderParams) doStaggerY(y int) bool {
	return !p.staggerX && (y&1 == 1) != p.staggerEven
}

// octagon returns the eight hexagon outline vertices relative to a
// tile's pixel origin, clockwise from the lower-left corner. Two of
// the eight collapse to a point on whichever axis has no side length,
// leaving the six true hexagon corners.
func (p renderParams) octagon() [8]Point {
	return [8]Point{
		{0, p.tileHeight - p.sideOffsetY},
		{0, p.sideOffsetY},
		{p.sideOffsetX, 0},
		{p.tileWidth - p.sideOffsetX, 0},
		{p.tileWidth, p.sideOffsetY},
		{p.tileWidth, p.tileHeight - p.sideOffsetY},
		{p.tileWidth - p.sideOffsetX, p.tileHeight},
		{p.sideOffsetX, p.tileHeight},
	}
}
