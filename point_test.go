package hexgrid

import "testing"

func TestPoint_Arithmetic(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, -4)); got != Pt(4, -2) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := Pt(1, 2).Sub(Pt(3, -4)); got != Pt(-2, 6) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := Pt(3, -2).Mul(4); got != Pt(12, -8) {
		t.Errorf("Mul = %v, want (12,-8)", got)
	}
}

func TestRect_HalfOpen(t *testing.T) {
	r := Rc(0, 0, 4, 4)

	if !r.Contains(Pt(0, 0)) {
		t.Error("Min corner should be inside")
	}
	if r.Contains(Pt(4, 4)) {
		t.Error("Max corner should be outside")
	}
	if r.Contains(Pt(3, 4)) {
		t.Error("Max edge should be outside")
	}
	if got := r.Size(); got != Sz(4, 4) {
		t.Errorf("Size = %v, want (4,4)", got)
	}
}

func TestRect_Empty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"inverted", Rc(4, 4, 0, 0), true},
		{"line", Rc(0, 0, 4, 0), true},
		{"unit", Rc(0, 0, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rc(0, 0, 4, 4), Rc(2, 2, 6, 6), true},
		{"contained", Rc(0, 0, 8, 8), Rc(2, 2, 4, 4), true},
		{"touching edges", Rc(0, 0, 4, 4), Rc(4, 0, 8, 4), false},
		{"disjoint", Rc(0, 0, 2, 2), Rc(5, 5, 7, 7), false},
		{"empty never intersects", Rc(0, 0, 0, 4), Rc(-1, -1, 8, 8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := Rc(0, 0, 2, 2)
	b := Rc(4, -1, 6, 1)

	if got := a.Union(b); got != Rc(0, -1, 6, 2) {
		t.Errorf("Union = %v, want (0,-1)-(6,2)", got)
	}
	// Empty operands are identity.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestRegion_Bounds(t *testing.T) {
	g := Region{
		Rc(0, 0, 2, 2),
		Rc(4, 4, 5, 6),
		Rc(-1, 1, 0, 2),
	}
	if got := g.Bounds(); got != Rc(-1, 0, 5, 6) {
		t.Errorf("Bounds = %v, want (-1,0)-(5,6)", got)
	}

	if got := (Region{}).Bounds(); !got.Empty() {
		t.Errorf("empty region Bounds = %v, want empty", got)
	}
}

func TestPolygonBounds(t *testing.T) {
	pts := []Point{{0, 24}, {0, 8}, {16, 0}, {32, 8}, {32, 24}, {16, 32}}
	got := polygonBounds(pts)

	// The exclusive Max keeps vertices on the far edges inside.
	want := Rc(0, 0, 33, 33)
	if got != want {
		t.Errorf("polygonBounds = %v, want %v", got, want)
	}
	for _, p := range pts {
		if !p.In(got) {
			t.Errorf("vertex %v outside its own bounds %v", p, got)
		}
	}

	if got := polygonBounds(nil); !got.Empty() {
		t.Errorf("polygonBounds(nil) = %v, want empty", got)
	}
}
