package board

import (
	"fmt"
	"strings"
)

// Board is a flat row-major array of 64 optional pieces.
// It is a value type: assigning a Board copies every piece and its flags.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartBoard creates a board holding the standard starting layout.
func NewStartBoard() *Board {
	b, _ := ParsePlacement(StartPlacement)
	return b
}

// Get returns the piece at (row, col), or NoPiece if empty or off the board.
func (b *Board) Get(row, col int) Piece {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return NoPiece
	}
	return b.squares[row*Size+col]
}

// GetSquare returns the piece on sq, or NoPiece if empty or off the board.
func (b *Board) GetSquare(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Set places p at (row, col). Coordinates off the board are ignored.
func (b *Board) Set(row, col int, p Piece) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return
	}
	b.squares[row*Size+col] = p
}

// SetSquare places p on sq. Squares off the board are ignored.
func (b *Board) SetSquare(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	b.squares[sq] = p
}

// IsEmpty returns true if sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.GetSquare(sq).IsEmpty()
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
}

// Count returns the number of pieces of color c on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for _, p := range b.squares {
		if p.IsColor(c) {
			n++
		}
	}
	return n
}

// Placement returns the FEN piece placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		empty := 0
		for col := 0; col < Size; col++ {
			p := b.Get(row, col)
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row < Size-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String returns a diagram of the board with rank and file labels.
func (b *Board) String() string {
	s := "\n"
	for row := 0; row < Size; row++ {
		s += fmt.Sprintf("%d  ", Size-row)
		for col := 0; col < Size; col++ {
			p := b.Get(row, col)
			if p.IsEmpty() {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	return s
}
