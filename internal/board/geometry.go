package board

// Geometry holds, for every square, the number of steps available in each
// direction before leaving the board.
type Geometry [NumSquares][NumDirections]int8

// geometry is computed once at package init and never written afterwards.
var geometry Geometry

func init() {
	geometry = BuildGeometry()
}

// BuildGeometry computes the square-to-edge distance table.
func BuildGeometry() Geometry {
	var g Geometry

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			north := int8(row)
			south := int8(Size - 1 - row)
			west := int8(col)
			east := int8(Size - 1 - col)

			g[row*Size+col] = [NumDirections]int8{
				north,
				south,
				west,
				east,
				min(north, west),
				min(south, east),
				min(north, east),
				min(south, west),
			}
		}
	}
	return g
}

// StepsTo returns how many squares a piece on sq can travel in direction d
// before reaching the edge of the board.
func StepsTo(sq Square, d Direction) int {
	if !sq.IsValid() || d >= NumDirections {
		return 0
	}
	return int(geometry[sq][d])
}
