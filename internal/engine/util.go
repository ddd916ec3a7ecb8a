package engine

// offset is a (row, col) displacement on the board.
type offset struct {
	row, col int
}

// kingOffsets are the eight single-step displacements around a square.
var kingOffsets = [8]offset{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// knightOffsets are the eight knight jumps from a square.
var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {1, -2}, {-2, 1},
	{-1, 2}, {2, -1}, {-1, -2}, {-2, -1},
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
