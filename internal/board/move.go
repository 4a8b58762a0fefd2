package board

import "sort"

// Move is a pair of origin and destination squares.
type Move struct {
	Start Square
	End   Square
}

// NewMove creates a move from start to end.
func NewMove(start, end Square) Move {
	return Move{Start: start, End: end}
}

// String returns the move in coordinate form (e.g., "e2e4").
func (m Move) String() string {
	return m.Start.String() + m.End.String()
}

// MoveAction classifies the outcome of applying a move.
type MoveAction uint8

const (
	ActionIncorrect MoveAction = iota
	ActionMove
	ActionTake
	ActionCastle
)

// String returns the action name. The names double as feedback cue keys.
func (a MoveAction) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionTake:
		return "take"
	case ActionCastle:
		return "castle"
	default:
		return "incorrect"
	}
}

// LegalityTable maps each origin square of the side to move to its legal moves.
// Every square holding a piece of that side has an entry, possibly empty.
// The table is only valid until the board it was generated from is mutated.
type LegalityTable map[Square][]Move

// Contains returns true if the move start->end is listed under start.
func (t LegalityTable) Contains(start, end Square) bool {
	for _, m := range t[start] {
		if m.Start == start && m.End == end {
			return true
		}
	}
	return false
}

// Destinations returns the destination squares reachable from sq, in
// generation order.
func (t LegalityTable) Destinations(sq Square) []Square {
	moves := t[sq]
	dests := make([]Square, 0, len(moves))
	for _, m := range moves {
		dests = append(dests, m.End)
	}
	return dests
}

// Origins returns the origin squares in the table in ascending order.
func (t LegalityTable) Origins() []Square {
	origins := make([]Square, 0, len(t))
	for sq := range t {
		origins = append(origins, sq)
	}
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })
	return origins
}

// Len returns the total number of moves in the table.
func (t LegalityTable) Len() int {
	n := 0
	for _, moves := range t {
		n += len(moves)
	}
	return n
}

// Clone returns a deep copy of the table.
func (t LegalityTable) Clone() LegalityTable {
	c := make(LegalityTable, len(t))
	for sq, moves := range t {
		c[sq] = append(make([]Move, 0, len(moves)), moves...)
	}
	return c
}
