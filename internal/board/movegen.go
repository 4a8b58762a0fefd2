package board

// knightOffsets are the eight knight jumps expressed as flat-index steps.
var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}

// Generate builds the legality table for side on b.
//
// Every square holding a piece of side gets an entry, possibly empty. A pawn's
// en-passant flag is consumed here: the capture is listed once and the flag is
// cleared on the board, so the opportunity lasts exactly one generation pass.
func Generate(b *Board, side Color) LegalityTable {
	table := make(LegalityTable)

	for i := Square(0); i < NumSquares; i++ {
		piece := b.GetSquare(i)
		if !piece.IsColor(side) {
			continue
		}

		moves := make([]Move, 0, 8)
		switch piece.Kind {
		case Pawn:
			moves = generatePawnMoves(b, moves, piece, i)
		case Knight:
			moves = generateKnightMoves(b, moves, piece, i)
		case Bishop, Rook, Queen:
			moves = generateSlidingMoves(b, moves, piece, i)
		case King:
			moves = generateKingMoves(b, moves, piece, i)
			moves = generateCastlingMoves(b, moves, piece, i)
		}
		table[i] = moves
	}

	return table
}

// slidingDirections returns the range of direction indices a slider walks.
func slidingDirections(k Kind) (first, last Direction) {
	switch k {
	case Bishop:
		return NorthWest, NumDirections
	case Rook:
		return North, NorthWest
	default:
		return North, NumDirections
	}
}

// generateSlidingMoves walks each ray until the edge or the first occupied
// square, which is included only when it holds an enemy.
func generateSlidingMoves(b *Board, moves []Move, piece Piece, from Square) []Move {
	first, last := slidingDirections(piece.Kind)

	for d := first; d < last; d++ {
		for n := 1; n <= StepsTo(from, d); n++ {
			to := from.step(d, n)
			target := b.GetSquare(to)
			if !target.IsEmpty() {
				if piece.IsEnemy(target) {
					moves = append(moves, NewMove(from, to))
				}
				break
			}
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// generateKnightMoves adds knight jumps that stay on the board and do not land
// on a friendly piece.
func generateKnightMoves(b *Board, moves []Move, piece Piece, from Square) []Move {
	for _, offset := range knightOffsets {
		to := from + Square(offset)
		if !to.IsValid() || knightWraps(from, to) {
			continue
		}
		if piece.IsAlly(b.GetSquare(to)) {
			continue
		}
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

// knightWraps reports whether a jump crossed from one edge of the flat array to
// the other. A real knight jump changes the column by at most two.
func knightWraps(from, to Square) bool {
	fc, tc := from.Col(), to.Col()
	if fc <= 1 && tc >= Size-2 {
		return true
	}
	if fc >= Size-2 && tc <= 1 {
		return true
	}
	return false
}

// generateKingMoves adds the adjacent squares not held by a friendly piece.
func generateKingMoves(b *Board, moves []Move, piece Piece, from Square) []Move {
	for d := North; d < NumDirections; d++ {
		if StepsTo(from, d) < 1 {
			continue
		}
		to := from.step(d, 1)
		if piece.IsAlly(b.GetSquare(to)) {
			continue
		}
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

// generateCastlingMoves adds the two-file king moves toward a castling rook.
// The corner rook on the king's row must be a friendly rook that can still
// castle and every square between king and rook must be empty.
func generateCastlingMoves(b *Board, moves []Move, king Piece, from Square) []Move {
	if !king.CanCastle {
		return moves
	}

	for _, d := range [2]Direction{West, East} {
		// The rook must stand beyond the king's destination square
		steps := StepsTo(from, d)
		if steps <= 2 {
			continue
		}

		rookSq := from.step(d, steps)
		rook := b.GetSquare(rookSq)
		if !rook.IsKind(Rook) || !king.IsAlly(rook) || !rook.CanCastle {
			continue
		}

		blocked := false
		for n := 1; n < steps; n++ {
			if !b.IsEmpty(from.step(d, n)) {
				blocked = true
				break
			}
		}
		if !blocked {
			moves = append(moves, NewMove(from, from.step(d, 2)))
		}
	}
	return moves
}

// pawnCaptureDirections returns the forward-diagonal directions for a color,
// west side first.
func pawnCaptureDirections(c Color) (west, east Direction) {
	if c == White {
		return NorthWest, NorthEast
	}
	return SouthWest, SouthEast
}

// generatePawnMoves adds forward pushes, diagonal captures and a pending
// en-passant capture, then clears the pawn's en-passant flag.
func generatePawnMoves(b *Board, moves []Move, piece Piece, from Square) []Move {
	forward := piece.Color.Forward()

	// Forward pushes never capture
	count := 1
	if from.Row() == piece.Color.HomeRow() {
		count = 2
	}
	count = min(count, StepsTo(from, forward))
	for n := 1; n <= count; n++ {
		to := from.step(forward, n)
		if !b.IsEmpty(to) {
			break
		}
		moves = append(moves, NewMove(from, to))
	}

	// Diagonal captures
	west, east := pawnCaptureDirections(piece.Color)
	for _, d := range [2]Direction{west, east} {
		if StepsTo(from, d) < 1 {
			continue
		}
		to := from.step(d, 1)
		if piece.IsEnemy(b.GetSquare(to)) {
			moves = append(moves, NewMove(from, to))
		}
	}

	// En passant
	if piece.EnPassant != NoEnPassant {
		d := east
		if piece.EnPassant == EnPassantWest {
			d = west
		}
		if StepsTo(from, d) >= 1 {
			moves = append(moves, NewMove(from, from.step(d, 1)))
		}
		piece.EnPassant = NoEnPassant
		b.SetSquare(from, piece)
	}

	return moves
}
