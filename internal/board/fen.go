package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the FEN piece placement field for the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a FEN piece placement field.
// A full FEN string is accepted; only its first field is read.
func ParsePlacement(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidPlacement)
	}

	b := NewBoard()
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}
	return b, nil
}

// parsePiecePlacement fills b from the placement field. Rows are listed from
// row 0 (the 8th rank) down to row 7, matching the board's flat index order.
func parsePiecePlacement(b *Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != Size {
		return fmt.Errorf("%w: need 8 rows, got %d", ErrInvalidPlacement, len(rows))
	}

	for row, rowStr := range rows {
		col := 0

		for _, c := range rowStr {
			if col > Size-1 {
				return fmt.Errorf("%w: too many squares in row %d", ErrInvalidPlacement, row)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				col += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece.IsEmpty() {
					return fmt.Errorf("%w: invalid piece character %q", ErrInvalidPlacement, c)
				}
				b.Set(row, col, piece)
				col++
			}
		}

		if col != Size {
			return fmt.Errorf("%w: row %d has %d squares", ErrInvalidPlacement, row, col)
		}
	}

	return nil
}
