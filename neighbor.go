package hexgrid

// The four diagonal neighbors of a staggered tile depend only on the
// stagger configuration, not on any pixel geometry: whether the tile's
// own row/column is pushed decides which of the two adjacent indexes
// on the other axis is the neighbor.

// TopLeft returns the tile diagonally up-left of (x, y).
func (r *Renderer) TopLeft(x, y int) Point {
	if r.cfg.Axis == StaggerY {
		if r.cfg.staggered(y) {
			return Pt(x, y-1)
		}
		return Pt(x-1, y-1)
	}
	if r.cfg.staggered(x) {
		return Pt(x-1, y)
	}
	return Pt(x-1, y-1)
}

// TopRight returns the tile diagonally up-right of (x, y).
func (r *Renderer) TopRight(x, y int) Point {
	if r.cfg.Axis == StaggerY {
		if r.cfg.staggered(y) {
			return Pt(x+1, y-1)
		}
		return Pt(x, y-1)
	}
	if r.cfg.staggered(x) {
		return Pt(x+1, y)
	}
	return Pt(x+1, y-1)
}

// BottomLeft returns the tile diagonally down-left of (x, y).
func (r *Renderer) BottomLeft(x, y int) Point {
	if r.cfg.Axis == StaggerY {
		if r.cfg.staggered(y) {
			return Pt(x, y+1)
		}
		return Pt(x-1, y+1)
	}
	if r.cfg.staggered(x) {
		return Pt(x-1, y+1)
	}
	return Pt(x-1, y)
}

// BottomRight returns the tile diagonally down-right of (x, y).
func (r *Renderer) BottomRight(x, y int) Point {
	if r.cfg.Axis == StaggerY {
		if r.cfg.staggered(y) {
			return Pt(x+1, y+1)
		}
		return Pt(x, y+1)
	}
	if r.cfg.staggered(x) {
		return Pt(x+1, y+1)
	}
	return Pt(x+1, y)
}
