package hexgrid_test

import (
	"image/color"
	"testing"

	"github.com/gogpu/hexgrid"
	"github.com/gogpu/hexgrid/recording"
)

func hexCfg(axis hexgrid.StaggerAxis, parity hexgrid.StaggerParity, side int) hexgrid.StaggerConfig {
	return hexgrid.StaggerConfig{
		Orientation: hexgrid.OrientationHexagonal,
		Axis:        axis,
		Parity:      parity,
		SideLength:  side,
	}
}

// segment is a normalized undirected line segment.
type segment struct {
	a, b hexgrid.Point
}

func normalize(l hexgrid.Line) segment {
	a, b := l.From, l.To
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return segment{a, b}
}

// recordGridSegments draws the full grid into a recorder and returns
// the emitted segments, dropping the zero-length ones from degenerate
// outline vertices.
func recordGridSegments(t *testing.T, cfg hexgrid.StaggerConfig, ws hexgrid.Workspace) []segment {
	t.Helper()

	r := hexgrid.New(cfg)
	size := r.GridSize(ws)
	rec := recording.NewRecorder()
	r.DrawGrid(rec, hexgrid.Rc(0, 0, size.W, size.H), ws, color.Black)

	var segments []segment
	for _, cmd := range rec.Finish().Commands() {
		dl, ok := cmd.(recording.DrawLinesCommand)
		if !ok {
			t.Fatalf("DrawGrid emitted %v, want only DrawLines", cmd.Type())
		}
		for _, l := range dl.Lines {
			if l.From == l.To {
				continue
			}
			segments = append(segments, normalize(l))
		}
	}
	return segments
}

// Across all configurations, a full-grid draw emits each edge exactly
// once and leaves no dangling endpoints: every vertex of the mesh is
// met by at least two segments, so the drawn boundary is closed.
func TestDrawGrid_EdgeMesh(t *testing.T) {
	configs := []struct {
		name string
		cfg  hexgrid.StaggerConfig
	}{
		{"x odd", hexCfg(hexgrid.StaggerX, hexgrid.StaggerOdd, 16)},
		{"x even", hexCfg(hexgrid.StaggerX, hexgrid.StaggerEven, 16)},
		{"y odd", hexCfg(hexgrid.StaggerY, hexgrid.StaggerOdd, 16)},
		{"y even", hexCfg(hexgrid.StaggerY, hexgrid.StaggerEven, 16)},
		{"x odd diamond", hexCfg(hexgrid.StaggerX, hexgrid.StaggerOdd, 0)},
		{"y even diamond", hexCfg(hexgrid.StaggerY, hexgrid.StaggerEven, 0)},
	}

	ws := hexgrid.Workspace{Width: 4, Height: 3, TileWidth: 32, TileHeight: 32}
	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			segments := recordGridSegments(t, tc.cfg, ws)
			if len(segments) == 0 {
				t.Fatal("no segments emitted")
			}

			seen := make(map[segment]bool, len(segments))
			degree := make(map[hexgrid.Point]int, len(segments))
			for _, s := range segments {
				if seen[s] {
					t.Errorf("segment %v-%v emitted twice", s.a, s.b)
				}
				seen[s] = true
				degree[s.a]++
				degree[s.b]++
			}

			for p, d := range degree {
				if d < 2 {
					t.Errorf("vertex %v has degree %d, want >= 2", p, d)
				}
			}
		})
	}
}

// A clipped draw emits a subset of the full draw and stays within a
// small margin of the exposed rectangle.
func TestDrawGrid_Clipped(t *testing.T) {
	cfg := hexCfg(hexgrid.StaggerY, hexgrid.StaggerOdd, 16)
	ws := hexgrid.Workspace{Width: 8, Height: 8, TileWidth: 32, TileHeight: 32}

	full := recordGridSegments(t, cfg, ws)
	fullSet := make(map[segment]bool, len(full))
	for _, s := range full {
		fullSet[s] = true
	}

	r := hexgrid.New(cfg)
	exposed := hexgrid.Rc(40, 40, 140, 120)
	rec := recording.NewRecorder()
	r.DrawGrid(rec, exposed, ws, color.Black)

	clipped := 0
	for _, cmd := range rec.Finish().Commands() {
		for _, l := range cmd.(recording.DrawLinesCommand).Lines {
			if l.From == l.To {
				continue
			}
			s := normalize(l)
			if !fullSet[s] {
				t.Errorf("clipped draw emitted %v-%v, absent from the full draw", s.a, s.b)
			}
			for _, p := range []hexgrid.Point{s.a, s.b} {
				if p.X < exposed.Min.X-2*ws.TileWidth || p.X > exposed.Max.X+ws.TileWidth ||
					p.Y < exposed.Min.Y-2*ws.TileHeight || p.Y > exposed.Max.Y+ws.TileHeight {
					t.Errorf("segment endpoint %v too far outside exposed %v", p, exposed)
				}
			}
			clipped++
		}
	}
	if clipped == 0 {
		t.Fatal("clipped draw emitted nothing")
	}
	if clipped >= len(full) {
		t.Errorf("clipped draw emitted %d segments, full draw only %d", clipped, len(full))
	}
}

// An empty exposed rectangle draws nothing.
func TestDrawGrid_EmptyExposed(t *testing.T) {
	r := hexgrid.New(hexCfg(hexgrid.StaggerX, hexgrid.StaggerOdd, 16))
	ws := hexgrid.Workspace{Width: 4, Height: 4, TileWidth: 32, TileHeight: 32}

	rec := recording.NewRecorder()
	r.DrawGrid(rec, hexgrid.Rect{}, ws, color.Black)
	if n := rec.Finish().Len(); n != 0 {
		t.Errorf("empty exposed rect emitted %d commands, want 0", n)
	}
}
