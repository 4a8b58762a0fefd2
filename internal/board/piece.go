package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Forward returns the direction pawns of this color advance in.
// White starts on the high-index rows and moves North.
func (c Color) Forward() Direction {
	if c == White {
		return North
	}
	return South
}

// HomeRow returns the row pawns of this color start on.
func (c Color) HomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Kind represents the type of a chess piece.
// The zero value NoKind marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the kind (lowercase).
func (k Kind) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k > King {
		return ' '
	}
	return chars[k]
}

// EnPassantSide records which neighbour a pawn may capture en passant.
// It names the side the double-stepped enemy pawn stands on.
type EnPassantSide uint8

const (
	NoEnPassant EnPassantSide = iota
	EnPassantWest
	EnPassantEast
)

// String returns the side name.
func (e EnPassantSide) String() string {
	switch e {
	case EnPassantWest:
		return "West"
	case EnPassantEast:
		return "East"
	default:
		return "None"
	}
}

// Piece is a unit on the board together with its special-move flags.
// The zero value is an empty square.
type Piece struct {
	Kind  Kind
	Color Color

	// CanCastle starts true for kings and rooks and is cleared once the
	// piece takes part in a castling move.
	CanCastle bool

	// EnPassant is set on a pawn when an adjacent enemy pawn double-steps
	// past it. Move generation consumes it on the next pass.
	EnPassant EnPassantSide
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// NewPiece creates a piece with its initial flags.
func NewPiece(k Kind, c Color) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	return Piece{
		Kind:      k,
		Color:     c,
		CanCastle: k == King || k == Rook,
	}
}

// PieceFromChar converts a FEN character to a Piece.
// Uppercase letters are white, lowercase black.
func PieceFromChar(c byte) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}

	switch c {
	case 'P':
		return NewPiece(Pawn, color)
	case 'N':
		return NewPiece(Knight, color)
	case 'B':
		return NewPiece(Bishop, color)
	case 'R':
		return NewPiece(Rook, color)
	case 'Q':
		return NewPiece(Queen, color)
	case 'K':
		return NewPiece(King, color)
	default:
		return NoPiece
	}
}

// IsEmpty returns true if this is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsSliding returns true for bishops, rooks and queens.
func (p Piece) IsSliding() bool {
	return p.Kind == Bishop || p.Kind == Rook || p.Kind == Queen
}

// IsKind returns true if the piece is of kind k.
func (p Piece) IsKind(k Kind) bool {
	return p.Kind == k
}

// IsColor returns true if the piece is a real piece of color c.
func (p Piece) IsColor(c Color) bool {
	return !p.IsEmpty() && p.Color == c
}

// IsEnemy returns true if other is a piece of the opposite color.
func (p Piece) IsEnemy(other Piece) bool {
	return !other.IsEmpty() && other.Color != p.Color
}

// IsAlly returns true if other is a piece of the same color.
func (p Piece) IsAlly(other Piece) bool {
	return !other.IsEmpty() && other.Color == p.Color
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	c := p.Kind.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}
