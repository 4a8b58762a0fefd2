package board

// Perft counts the leaf nodes of the move tree of the given depth, playing
// every generated move for side and alternating sides at each ply.
// The board passed in is not modified.
func Perft(b Board, side Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	table := Generate(&b, side)
	if depth == 1 {
		return uint64(table.Len())
	}

	var nodes uint64
	for _, start := range table.Origins() {
		for _, m := range table[start] {
			child := b
			action, err := Apply(m.Start, m.End, &child, child.GetSquare(m.Start), table)
			if err != nil || action == ActionIncorrect {
				continue
			}
			nodes += Perft(child, side.Other(), depth-1)
		}
	}
	return nodes
}
