package hexgrid

import "image/color"

// Line is a screen-space line segment.
type Line struct {
	From, To Point
}

// Ln is a convenience function to create a Line.
func Ln(from, to Point) Line {
	return Line{From: from, To: to}
}

// Surface is the drawing target abstraction the draw entry points
// emit primitives against. Implementations may rasterize immediately,
// batch, or record the calls; the renderer only guarantees the order
// of the calls it makes.
//
// Surfaces are not required to be safe for concurrent use. The
// recording, raster, and backend/ebitengine subpackages provide
// implementations.
type Surface interface {
	// DrawLines draws a batch of one-pixel line segments in the given
	// color. The slice is only valid for the duration of the call;
	// implementations that retain it must copy.
	DrawLines(lines []Line, c color.Color)

	// FillPolygon fills a convex polygon given by its outline
	// vertices. The slice is only valid for the duration of the call.
	FillPolygon(pts []Point, c color.Color)

	// DrawCell blits a cell's content with its bottom-left corner at
	// pos, covering size pixels upward and rightward from there.
	DrawCell(cell Cell, pos Point, size Size)
}
