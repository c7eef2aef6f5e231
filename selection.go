package hexgrid

import "image/color"

// TileToPolygon returns the eight-vertex hexagon outline of a tile,
// positioned at the tile's screen origin within the given workspace.
// The same outline template drives DrawGrid and DrawTileSelection, so
// a polygon from here matches the drawn geometry exactly and can be
// used for hit-testing and highlight rendering.
func (r *Renderer) TileToPolygon(x, y int, ws Workspace) []Point {
	p := newRenderParams(r.cfg, ws)
	origin := r.tileOrigin(Pt(x, y), ws)

	oct := p.octagon()
	polygon := make([]Point, len(oct))
	for i, v := range oct {
		polygon[i] = origin.Add(v)
	}
	return polygon
}

// DrawTileSelection fills the hexagon of every selected tile whose
// bounding box intersects the exposed rectangle. Selections are
// typically sparse, so each tile is placed through the full transform
// rather than the incremental traversal the other draw operations use.
func (r *Renderer) DrawTileSelection(s Surface, region Region, ws Workspace, c color.Color, exposed Rect) {
	for _, tiles := range region {
		for y := tiles.Min.Y; y < tiles.Max.Y; y++ {
			for x := tiles.Min.X; x < tiles.Max.X; x++ {
				polygon := r.TileToPolygon(x, y, ws)
				if polygonBounds(polygon).Intersects(exposed) {
					s.FillPolygon(polygon, c)
				}
			}
		}
	}
}
