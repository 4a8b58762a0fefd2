package game

import (
	"errors"

	"github.com/hailam/drwchess/internal/board"
)

var (
	// ErrNothingThere is returned when picking an empty square.
	ErrNothingThere = errors.New("no piece on square")

	// ErrNotYourPiece is returned when picking a piece of the side not to move.
	ErrNotYourPiece = errors.New("piece belongs to the other side")

	// ErrAlreadyHolding is returned when picking while a piece is held.
	ErrAlreadyHolding = errors.New("already holding a piece")

	// ErrNotHolding is returned when dropping with nothing held.
	ErrNotHolding = errors.New("not holding a piece")

	// ErrSquareOutOfRange is returned when picking a square off the board.
	ErrSquareOutOfRange = board.ErrSquareOutOfRange
)
