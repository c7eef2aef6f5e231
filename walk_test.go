package hexgrid

import "testing"

func collectWalk(w *lineWalk) (tiles, positions []Point) {
	for tile, pos, ok := w.next(); ok; tile, pos, ok = w.next() {
		tiles = append(tiles, tile)
		positions = append(positions, pos)
	}
	return tiles, positions
}

func TestLineWalk_PixelLimit(t *testing.T) {
	// Steps of 32 pixels against an exclusive limit of 96: positions
	// 0, 32, 64 are yielded, 96 is the edge and excluded.
	w := newLineWalk(Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(32, 0), true, 96, 100, false)

	tiles, positions := collectWalk(&w)
	wantTiles := []Point{{0, 0}, {1, 0}, {2, 0}}
	wantPos := []Point{{0, 0}, {32, 0}, {64, 0}}

	if len(tiles) != len(wantTiles) {
		t.Fatalf("yielded %d pairs, want %d", len(tiles), len(wantTiles))
	}
	for i := range wantTiles {
		if tiles[i] != wantTiles[i] || positions[i] != wantPos[i] {
			t.Errorf("pair %d = (%v, %v), want (%v, %v)",
				i, tiles[i], positions[i], wantTiles[i], wantPos[i])
		}
	}
}

func TestLineWalk_IncludeEdge(t *testing.T) {
	// With includeEdge the pair sitting exactly on the limit is
	// yielded too.
	w := newLineWalk(Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(32, 0), true, 96, 100, true)

	tiles, _ := collectWalk(&w)
	if len(tiles) != 4 || tiles[3] != Pt(3, 0) {
		t.Fatalf("with includeEdge got %v, want 4 pairs ending at (3,0)", tiles)
	}
}

func TestLineWalk_TileLimit(t *testing.T) {
	// The tile-index bound cuts the walk before the pixel limit does.
	w := newLineWalk(Pt(0, 0), Pt(0, 0), Pt(0, 1), Pt(0, 16), false, 1000, 3, false)

	tiles, _ := collectWalk(&w)
	want := []Point{{0, 0}, {0, 1}, {0, 2}}
	if len(tiles) != len(want) {
		t.Fatalf("yielded %d pairs, want %d", len(tiles), len(want))
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, tiles[i], want[i])
		}
	}
}

func TestLineWalk_NegativeStart(t *testing.T) {
	// A walk may start at a negative tile index; it still ends at the
	// exclusive tile limit.
	w := newLineWalk(Pt(-1, 0), Pt(-24, 0), Pt(1, 0), Pt(24, 0), true, 1000, 2, false)

	tiles, _ := collectWalk(&w)
	want := []Point{{-1, 0}, {0, 0}, {1, 0}}
	if len(tiles) != len(want) {
		t.Fatalf("yielded %v, want %v", tiles, want)
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, tiles[i], want[i])
		}
	}
}

func TestLineWalk_Restart(t *testing.T) {
	w := newLineWalk(Pt(2, 1), Pt(64, 0), Pt(1, 0), Pt(32, 0), true, 160, 100, false)

	first, _ := collectWalk(&w)
	w.restart()
	second, _ := collectWalk(&w)

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("restart changed the walk: %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pair %d = %v after restart, want %v", i, second[i], first[i])
		}
	}
}

func TestLineWalk_Exhausted(t *testing.T) {
	// The zero value yields nothing.
	var w lineWalk
	if _, _, ok := w.next(); ok {
		t.Error("zero-value walk yielded a pair")
	}

	// A walk starting past its pixel limit yields nothing either.
	w = newLineWalk(Pt(0, 0), Pt(100, 0), Pt(1, 0), Pt(32, 0), true, 96, 100, false)
	if _, _, ok := w.next(); ok {
		t.Error("walk past its limit yielded a pair")
	}
}
