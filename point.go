package hexgrid

// Point is an integer 2D point, in either tile or screen space
// depending on context.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// In reports whether the point lies inside the rectangle.
func (p Point) In(r Rect) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Size is a width and height in pixels or tiles.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle with half-open bounds: it contains
// points p with Min.X <= p.X < Max.X and Min.Y <= p.Y < Max.Y.
type Rect struct {
	Min, Max Point
}

// Rc is a convenience function to create a Rect from two corners.
func Rc(x0, y0, x1, y1 int) Rect {
	return Rect{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

// RcSized creates a Rect from an origin and a width and height.
func RcSized(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Dx returns the rectangle's width.
func (r Rect) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the rectangle's height.
func (r Rect) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{W: r.Dx(), H: r.Dy()}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.In(r)
}

// Intersects reports whether two rectangles share any point.
func (r Rect) Intersects(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.Min.X < r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y < r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X > r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y > r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Region is a set of tile rectangles, typically a selection.
type Region []Rect

// Bounds returns the union of all rectangles in the region.
func (g Region) Bounds() Rect {
	var b Rect
	for _, r := range g {
		b = b.Union(r)
	}
	return b
}

// polygonBounds returns the bounding rectangle of a polygon outline.
// The Max edge is exclusive, so a vertex on it still counts as inside.
func polygonBounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	b.Max.X++
	b.Max.Y++
	return b
}
