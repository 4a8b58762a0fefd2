// Package board implements the chess rules core on a flat 64-square mailbox board.
package board

import (
	"fmt"
	"strconv"
)

// Size is the number of rows and columns on the board.
const Size = 8

// NumSquares is the number of squares on the board.
const NumSquares = Size * Size

// Square represents a square on the chess board (0-63).
// Row-major flattening: index = row*8 + col, where row 0 is the black back rank
// (the first rank listed in a FEN placement) and col 0 is the a-file.
// A8=0, H8=7, A1=56, H1=63.
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// NewSquare creates a square from row and column (0-indexed).
// Returns NoSquare if either coordinate is off the board.
func NewSquare(row, col int) Square {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return NoSquare
	}
	return Square(row*Size + col)
}

// Row returns the row of the square (0-7, where 0 is the 8th rank).
func (sq Square) Row() int {
	return int(sq) / Size
}

// Col returns the column of the square (0-7, where 0 is the a-file).
func (sq Square) Col() int {
	return int(sq) % Size
}

// IsValid returns true if the square is on the board (0-63).
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// ParseSquare parses algebraic notation ("e4") or a flat index ("36") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' {
		col := int(s[0] - 'a')
		rank := int(s[1] - '1')
		if rank < 0 || rank > 7 {
			return NoSquare, fmt.Errorf("%w: %s", ErrSquareOutOfRange, s)
		}
		return NewSquare(7-rank, col), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	if n < 0 || n >= NumSquares {
		return NoSquare, fmt.Errorf("%w: %d", ErrSquareOutOfRange, n)
	}
	return Square(n), nil
}

// Direction is one of the eight compass directions used for ray casting.
// The index order is fixed: the first four are orthogonal, the last four diagonal.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	NumDirections
)

// directionOffset is the flat-index step for each direction.
var directionOffset = [NumDirections]int{-8, 8, -1, 1, -9, 9, -7, 7}

// Offset returns the flat-index step taken when moving one square in the direction.
func (d Direction) Offset() int {
	return directionOffset[d]
}

// IsDiagonal returns true for the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d >= NorthWest && d < NumDirections
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	case NorthWest:
		return "NorthWest"
	case SouthEast:
		return "SouthEast"
	case NorthEast:
		return "NorthEast"
	case SouthWest:
		return "SouthWest"
	default:
		return "None"
	}
}

// step returns the square reached by moving n squares from sq in direction d.
// The caller must have checked n against the geometry table.
func (sq Square) step(d Direction, n int) Square {
	return sq + Square(d.Offset()*n)
}
