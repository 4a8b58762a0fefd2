package board

import "errors"

// Sentinel errors returned by the board package.
// Use these with errors.Is() to check for specific failure conditions.
var (
	// ErrInvalidPlacement indicates a malformed FEN piece placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrSquareOutOfRange indicates a coordinate outside the 8x8 board.
	ErrSquareOutOfRange = errors.New("square out of range")

	// ErrMalformedCastle indicates a castling-shaped move whose rook could not
	// be found. The board is left untouched when this is returned.
	ErrMalformedCastle = errors.New("malformed castling move")
)
