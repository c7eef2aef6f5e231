package hexgrid

// StaggerAxis selects the grid axis along which alternating rows or
// columns are pixel-shifted to form the hexagonal tiling.
type StaggerAxis uint8

const (
	// StaggerX shifts alternating columns vertically.
	StaggerX StaggerAxis = iota
	// StaggerY shifts alternating rows horizontally.
	StaggerY
)

// String returns the string representation of a StaggerAxis.
func (a StaggerAxis) String() string {
	switch a {
	case StaggerX:
		return "StaggerX"
	case StaggerY:
		return "StaggerY"
	}
	return "Unknown"
}

// StaggerParity selects whether odd- or even-indexed rows/columns
// (along the stagger axis) are the shifted ones.
type StaggerParity uint8

const (
	// StaggerOdd shifts odd-indexed rows or columns.
	StaggerOdd StaggerParity = iota
	// StaggerEven shifts even-indexed rows or columns.
	StaggerEven
)

// String returns the string representation of a StaggerParity.
func (p StaggerParity) String() string {
	switch p {
	case StaggerOdd:
		return "StaggerOdd"
	case StaggerEven:
		return "StaggerEven"
	}
	return "Unknown"
}

// Orientation selects the tile shape family.
type Orientation uint8

const (
	// OrientationHexagonal elongates tiles along the stagger axis by
	// the configured side length.
	OrientationHexagonal Orientation = iota
	// OrientationStaggered uses plain diamond tiles; the side length
	// is ignored, as if it were zero.
	OrientationStaggered
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHexagonal:
		return "Hexagonal"
	case OrientationStaggered:
		return "Staggered"
	}
	return "Unknown"
}

// StaggerConfig is the map-level stagger configuration a Renderer is
// built from. SideLength is the length in pixels of the hexagon's
// parallel edges along the stagger axis; zero yields a diamond tile.
type StaggerConfig struct {
	Orientation Orientation
	Axis        StaggerAxis
	Parity      StaggerParity
	SideLength  int
}

// staggered reports whether index i along the stagger axis is pushed
// by half a row or column. Go's & is a two's-complement bit operation,
// so negative indices classify by their true parity.
func (c StaggerConfig) staggered(i int) bool {
	if c.Parity == StaggerEven {
		return i&1 == 0
	}
	return i&1 == 1
}

// Workspace describes a rectangular tile-grid extent: tile counts and
// the base tile cell size in pixels. It is a parameter object with no
// identity beyond its field values; queries take a fresh one per call.
type Workspace struct {
	Width, Height         int
	TileWidth, TileHeight int
}

// TileSize returns the base tile cell size in pixels.
func (w Workspace) TileSize() Size {
	return Size{W: w.TileWidth, H: w.TileHeight}
}

// Bounds returns the workspace extent as a tile rectangle at the
// origin.
func (w Workspace) Bounds() Rect {
	return Rc(0, 0, w.Width, w.Height)
}
