package chess

import (
	"strconv"
	"strings"
)

// Grid is the 8x8 board indexed as grid[row][col].
// It is a value type: assignment copies every square.
type Grid [BoardSize][BoardSize]Piece

// backRank is the piece order on both back ranks, from column 0.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialGrid returns the standard chess starting layout.
func InitialGrid() Grid {
	var g Grid
	for col := 0; col < BoardSize; col++ {
		g[0][col] = B(backRank[col])
		g[1][col] = B(Pawn)
		g[6][col] = W(Pawn)
		g[7][col] = W(backRank[col])
	}
	return g
}

// At returns the piece on the given square. Out of range squares read as Empty.
func (g *Grid) At(s Square) Piece {
	if !s.InBounds() {
		return Empty
	}
	return g[s.Row][s.Col]
}

// Set places a piece on the given square. Out of range squares are ignored.
func (g *Grid) Set(s Square, piece Piece) {
	if s.InBounds() {
		g[s.Row][s.Col] = piece
	}
}

// Find returns the first square holding piece, scanning row by row.
func (g *Grid) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g[row][col] == piece {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Count returns how many squares hold piece.
func (g *Grid) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// String dumps the grid as signed piece codes, one row per line,
// columns separated by tabs.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.Itoa(int(g[row][col])))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
