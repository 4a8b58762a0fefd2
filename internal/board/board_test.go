package board

import (
	"errors"
	"testing"
)

func TestBoardAccessorsOutOfRange(t *testing.T) {
	b := NewStartBoard()

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past edge", 8, 0},
		{"col past edge", 0, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Get(tc.row, tc.col); !got.IsEmpty() {
				t.Errorf("Get(%d, %d) = %v, want empty", tc.row, tc.col, got)
			}
			before := *b
			b.Set(tc.row, tc.col, NewPiece(Queen, White))
			if *b != before {
				t.Errorf("Set(%d, %d) changed the board", tc.row, tc.col)
			}
		})
	}

	if got := b.GetSquare(64); !got.IsEmpty() {
		t.Errorf("GetSquare(64) = %v, want empty", got)
	}
	if got := b.GetSquare(NoSquare); !got.IsEmpty() {
		t.Errorf("GetSquare(NoSquare) = %v, want empty", got)
	}
}

func TestBoardGetSetAgree(t *testing.T) {
	b := NewBoard()
	knight := NewPiece(Knight, Black)

	b.Set(2, 5, knight)
	if got := b.GetSquare(NewSquare(2, 5)); got != knight {
		t.Errorf("GetSquare after Set = %v, want %v", got, knight)
	}

	b.SetSquare(21, NoPiece)
	if got := b.Get(2, 5); !got.IsEmpty() {
		t.Errorf("Get after SetSquare(NoPiece) = %v, want empty", got)
	}
}

func TestBoardValueCopy(t *testing.T) {
	b := NewStartBoard()
	snapshot := *b

	b.SetSquare(52, NoPiece)
	if snapshot.IsEmpty(52) {
		t.Error("mutating the board changed an earlier copy")
	}
}

func TestNewPieceFlags(t *testing.T) {
	for k := Pawn; k <= King; k++ {
		p := NewPiece(k, White)
		want := k == King || k == Rook
		if p.CanCastle != want {
			t.Errorf("NewPiece(%v).CanCastle = %v, want %v", k, p.CanCastle, want)
		}
		if p.EnPassant != NoEnPassant {
			t.Errorf("NewPiece(%v).EnPassant = %v, want None", k, p.EnPassant)
		}
	}
	if !NewPiece(NoKind, White).IsEmpty() {
		t.Error("NewPiece(NoKind) should be empty")
	}
}

func TestPieceRelations(t *testing.T) {
	white := NewPiece(Bishop, White)
	black := NewPiece(Pawn, Black)

	if !white.IsEnemy(black) || white.IsAlly(black) {
		t.Error("white bishop and black pawn should be enemies")
	}
	if white.IsEnemy(NoPiece) || white.IsAlly(NoPiece) {
		t.Error("empty square is neither enemy nor ally")
	}
	if !white.IsSliding() || black.IsSliding() {
		t.Error("IsSliding mismatch")
	}
}

func TestParsePlacementStart(t *testing.T) {
	b, err := ParsePlacement(StartPlacement)
	if err != nil {
		t.Fatalf("ParsePlacement(start) error: %v", err)
	}

	tests := []struct {
		sq   Square
		want Piece
	}{
		{0, NewPiece(Rook, Black)},
		{4, NewPiece(King, Black)},
		{11, NewPiece(Pawn, Black)},
		{52, NewPiece(Pawn, White)},
		{60, NewPiece(King, White)},
		{63, NewPiece(Rook, White)},
		{36, NoPiece},
	}
	for _, tc := range tests {
		if got := b.GetSquare(tc.sq); got != tc.want {
			t.Errorf("square %d = %q, want %q", tc.sq, got, tc.want)
		}
	}

	if b.Count(White) != 16 || b.Count(Black) != 16 {
		t.Errorf("counts = %d/%d, want 16/16", b.Count(White), b.Count(Black))
	}
	if got := b.Placement(); got != StartPlacement {
		t.Errorf("Placement() = %q, want %q", got, StartPlacement)
	}
}

func TestParsePlacementRoundTrip(t *testing.T) {
	placements := []string{
		"8/8/8/8/8/8/8/8",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"4k3/8/8/3q4/8/2N5/8/R3K2R",
	}
	for _, placement := range placements {
		b, err := ParsePlacement(placement + " w - - 0 1")
		if err != nil {
			t.Fatalf("ParsePlacement(%q) error: %v", placement, err)
		}
		if got := b.Placement(); got != placement {
			t.Errorf("Placement() = %q, want %q", got, placement)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{"empty", ""},
		{"seven rows", "8/8/8/8/8/8/8"},
		{"short row", "7/8/8/8/8/8/8/8"},
		{"long row", "9/8/8/8/8/8/8/8"},
		{"overflowing row", "62P/8/8/8/8/8/8/8"},
		{"bad letter", "8/8/8/8/8/8/8/7x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlacement(tc.placement)
			if !errors.Is(err, ErrInvalidPlacement) {
				t.Errorf("ParsePlacement(%q) error = %v, want ErrInvalidPlacement", tc.placement, err)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a8", 0},
		{"h8", 7},
		{"e2", 52},
		{"e4", 36},
		{"a1", 56},
		{"h1", 63},
		{"0", 0},
		{"52", 52},
	}
	for _, tc := range tests {
		got, err := ParseSquare(tc.in)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSquare(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if tc.in[0] >= 'a' && got.String() != tc.in {
			t.Errorf("Square(%d).String() = %q, want %q", got, got.String(), tc.in)
		}
	}

	for _, bad := range []string{"64", "-1", "i1", "a9", "zz"} {
		if _, err := ParseSquare(bad); err == nil {
			t.Errorf("ParseSquare(%q) should fail", bad)
		}
	}
}
