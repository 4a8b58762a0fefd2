package board

import "testing"

func TestGeometryInvariants(t *testing.T) {
	g := BuildGeometry()

	for sq := Square(0); sq < NumSquares; sq++ {
		steps := g[sq]
		n, s, w, e := steps[North], steps[South], steps[West], steps[East]

		if n+s != 7 {
			t.Errorf("%v: north+south = %d, want 7", sq, n+s)
		}
		if w+e != 7 {
			t.Errorf("%v: west+east = %d, want 7", sq, w+e)
		}
		if steps[NorthWest] != min(n, w) {
			t.Errorf("%v: northwest = %d, want %d", sq, steps[NorthWest], min(n, w))
		}
		if steps[SouthEast] != min(s, e) {
			t.Errorf("%v: southeast = %d, want %d", sq, steps[SouthEast], min(s, e))
		}
		if steps[NorthEast] != min(n, e) {
			t.Errorf("%v: northeast = %d, want %d", sq, steps[NorthEast], min(n, e))
		}
		if steps[SouthWest] != min(s, w) {
			t.Errorf("%v: southwest = %d, want %d", sq, steps[SouthWest], min(s, w))
		}
	}
}

func TestGeometryKnownSquares(t *testing.T) {
	tests := []struct {
		sq   Square
		want [NumDirections]int8
	}{
		{0, [NumDirections]int8{0, 7, 0, 7, 0, 7, 0, 0}},
		{63, [NumDirections]int8{7, 0, 7, 0, 7, 0, 0, 0}},
		{NewSquare(3, 2), [NumDirections]int8{3, 4, 2, 5, 2, 4, 3, 2}},
		{NewSquare(6, 4), [NumDirections]int8{6, 1, 4, 3, 4, 1, 3, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := geometry[tc.sq]; got != tc.want {
				t.Errorf("geometry[%v] = %v, want %v", tc.sq, got, tc.want)
			}
		})
	}
}

func TestStepsToOffBoard(t *testing.T) {
	if got := StepsTo(NoSquare, North); got != 0 {
		t.Errorf("StepsTo(NoSquare) = %d, want 0", got)
	}
	if got := StepsTo(64, South); got != 0 {
		t.Errorf("StepsTo(64) = %d, want 0", got)
	}
}

func TestGeometryRaysStayOnBoard(t *testing.T) {
	// Walking the full step count must never wrap to another row or column
	for sq := Square(0); sq < NumSquares; sq++ {
		for d := North; d < NumDirections; d++ {
			n := StepsTo(sq, d)
			to := sq.step(d, n)
			if !to.IsValid() {
				t.Fatalf("%v %v x%d left the board", sq, d, n)
			}
			dr := abs(to.Row() - sq.Row())
			dc := abs(to.Col() - sq.Col())
			if d.IsDiagonal() && dr != dc {
				t.Errorf("%v %v x%d landed on %v, not a diagonal", sq, d, n, to)
			}
			if !d.IsDiagonal() && dr != 0 && dc != 0 {
				t.Errorf("%v %v x%d landed on %v, not a line", sq, d, n, to)
			}
		}
	}
}
