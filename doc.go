// Package hexgrid computes and draws staggered hexagonal tile grids.
//
// # Overview
//
// hexgrid maps a square tile-index space onto a hexagonal pixel tiling
// by shifting alternating rows or columns half a step. It converts
// between tile and screen coordinates, measures the pixel footprint of
// tile regions, enumerates the tiles visible in an exposed rectangle,
// and emits grid lines, tile contents, and selection highlights as
// primitive draw calls against a Surface.
//
// # Quick Start
//
//	import "github.com/gogpu/hexgrid"
//
//	r := hexgrid.New(hexgrid.StaggerConfig{
//		Orientation: hexgrid.OrientationHexagonal,
//		Axis:        hexgrid.StaggerY,
//		Parity:      hexgrid.StaggerOdd,
//		SideLength:  16,
//	})
//
//	ws := hexgrid.Workspace{Width: 20, Height: 20, TileWidth: 32, TileHeight: 32}
//	size := r.GridSize(ws)
//	tile := r.ScreenToTile(120, 80, ws)
//	r.DrawGrid(surface, hexgrid.Rc(0, 0, size.W, size.H), ws, color.Gray{Y: 128})
//
// # Coordinate System
//
// Two coordinate spaces are in play:
//   - Tile coordinates index the logical grid; whole tiles are integer
//     points, and the inverse transform truncates to whole tiles.
//   - Screen coordinates are pixels with the origin at the top-left
//     corner of tile (0, 0)'s bounding box. X increases right, Y down.
//
// All derived geometry is recomputed per call from the caller-supplied
// Workspace; the package holds no mutable state, so a Renderer may be
// shared between goroutines as long as the target Surface is not.
//
// # Backends
//
// The recording, raster, and backend/ebitengine subpackages provide
// Surface implementations for command capture, CPU rendering to an
// *image.RGBA, and Ebitengine windows respectively.
package hexgrid
