package board

import "fmt"

// Apply validates start->end against table and, if legal, plays piece on b.
//
// The table is trusted as-is: a move absent from table[start] yields
// ActionIncorrect and leaves b untouched. Any other outcome clears start,
// places piece on end and updates the castling and en-passant flags.
// A castling move whose rook is missing returns ErrMalformedCastle with the
// board untouched.
func Apply(start, end Square, b *Board, piece Piece, table LegalityTable) (MoveAction, error) {
	if !table.Contains(start, end) {
		return ActionIncorrect, nil
	}

	deltaRow := end.Row() - start.Row()
	deltaCol := end.Col() - start.Col()

	switch {
	case piece.IsKind(King) && piece.CanCastle && abs(deltaCol) == 2:
		return applyCastle(start, end, b, piece, deltaCol)

	case piece.IsKind(Pawn) && abs(deltaRow) == 2:
		applyDoubleStep(start, end, b, piece)
		return ActionMove, nil

	case piece.IsKind(Pawn) && abs(deltaRow) == 1 && abs(deltaCol) == 1:
		applyPawnCapture(start, end, b, piece)
		return ActionTake, nil
	}

	// A rook sliding two files sideways counts as having castled
	if piece.IsKind(Rook) && piece.CanCastle && deltaRow == 0 && abs(deltaCol) == 2 {
		piece.CanCastle = false
	}

	captured := b.GetSquare(end)
	b.SetSquare(start, NoPiece)
	b.SetSquare(end, piece)

	if captured.IsEmpty() {
		return ActionMove, nil
	}
	return ActionTake, nil
}

// applyCastle moves the king two files and brings the corner rook to the
// square the king passed over. deltaCol -2 uses the column 0 rook, +2 the
// column 7 rook.
func applyCastle(start, end Square, b *Board, king Piece, deltaCol int) (MoveAction, error) {
	row := start.Row()

	var rookFrom, rookTo Square
	switch deltaCol {
	case -2:
		rookFrom = NewSquare(row, 0)
		rookTo = end.step(East, 1)
	case 2:
		rookFrom = NewSquare(row, Size-1)
		rookTo = end.step(West, 1)
	default:
		return ActionIncorrect, fmt.Errorf("%w: %s has column delta %d", ErrMalformedCastle, NewMove(start, end), deltaCol)
	}

	rook := b.GetSquare(rookFrom)
	if !rook.IsKind(Rook) || !king.IsAlly(rook) {
		return ActionIncorrect, fmt.Errorf("%w: no rook on %s", ErrMalformedCastle, rookFrom)
	}

	king.CanCastle = false
	rook.CanCastle = false

	b.SetSquare(rookFrom, NoPiece)
	b.SetSquare(rookTo, rook)
	b.SetSquare(start, NoPiece)
	b.SetSquare(end, king)

	return ActionCastle, nil
}

// applyDoubleStep plays a two-square pawn push and flags every enemy pawn
// beside the landing square as able to capture en passant toward the mover.
func applyDoubleStep(start, end Square, b *Board, pawn Piece) {
	for _, d := range [2]Direction{West, East} {
		if StepsTo(end, d) < 1 {
			continue
		}
		sq := end.step(d, 1)
		neighbour := b.GetSquare(sq)
		if !neighbour.IsKind(Pawn) || !pawn.IsEnemy(neighbour) {
			continue
		}

		// The mover stands on the side opposite to d from the neighbour's view
		if d == West {
			neighbour.EnPassant = EnPassantEast
		} else {
			neighbour.EnPassant = EnPassantWest
		}
		b.SetSquare(sq, neighbour)
	}

	b.SetSquare(start, NoPiece)
	b.SetSquare(end, pawn)
}

// applyPawnCapture plays a diagonal pawn move. A diagonal onto an empty square
// is an en-passant capture: the enemy pawn beside the origin on the
// destination column is removed.
func applyPawnCapture(start, end Square, b *Board, pawn Piece) {
	if b.IsEmpty(end) {
		passed := NewSquare(start.Row(), end.Col())
		if victim := b.GetSquare(passed); victim.IsKind(Pawn) && pawn.IsEnemy(victim) {
			b.SetSquare(passed, NoPiece)
		}
	}

	b.SetSquare(start, NoPiece)
	b.SetSquare(end, pawn)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
