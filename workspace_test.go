package hexgrid

import "testing"

func TestEnum_Strings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{StaggerX.String(), "StaggerX"},
		{StaggerY.String(), "StaggerY"},
		{StaggerAxis(9).String(), "Unknown"},
		{StaggerOdd.String(), "StaggerOdd"},
		{StaggerEven.String(), "StaggerEven"},
		{StaggerParity(9).String(), "Unknown"},
		{OrientationHexagonal.String(), "Hexagonal"},
		{OrientationStaggered.String(), "Staggered"},
		{Orientation(9).String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestStaggerConfig_Staggered(t *testing.T) {
	odd := StaggerConfig{Parity: StaggerOdd}
	even := StaggerConfig{Parity: StaggerEven}

	for _, i := range []int{-3, -1, 1, 3, 7} {
		if !odd.staggered(i) {
			t.Errorf("odd parity: staggered(%d) = false, want true", i)
		}
		if even.staggered(i) {
			t.Errorf("even parity: staggered(%d) = true, want false", i)
		}
	}
	for _, i := range []int{-4, -2, 0, 2, 6} {
		if odd.staggered(i) {
			t.Errorf("odd parity: staggered(%d) = true, want false", i)
		}
		if !even.staggered(i) {
			t.Errorf("even parity: staggered(%d) = false, want true", i)
		}
	}
}

func TestWorkspace(t *testing.T) {
	ws := Workspace{Width: 5, Height: 3, TileWidth: 32, TileHeight: 16}

	if got := ws.TileSize(); got != Sz(32, 16) {
		t.Errorf("TileSize = %v, want (32,16)", got)
	}
	if got := ws.Bounds(); got != Rc(0, 0, 5, 3) {
		t.Errorf("Bounds = %v, want (0,0)-(5,3)", got)
	}
}
