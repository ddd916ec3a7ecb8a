package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestWithinBounds(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want bool
	}{
		{chess.Sq(0, 0), true},
		{chess.Sq(7, 7), true},
		{chess.Sq(0, 7), true},
		{chess.Sq(-1, 4), false},
		{chess.Sq(4, 8), false},
		{chess.Sq(8, -1), false},
	}

	for _, tt := range tests {
		if got := WithinBounds(tt.sq); got != tt.want {
			t.Errorf("WithinBounds(%v) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestIsPathClear(t *testing.T) {
	grid := testutil.MustGrid(t, `
		r...k..r
		........
		..p.....
		........
		....Q...
		........
		........
		....K...
	`)

	tests := []struct {
		name       string
		start, end chess.Square
		want       bool
	}{
		{"row clear", chess.Sq(4, 4), chess.Sq(4, 0), true},
		{"adjacent is trivially clear", chess.Sq(4, 4), chess.Sq(4, 5), true},
		{"column up to king", chess.Sq(4, 4), chess.Sq(0, 4), true},
		{"column through queen", chess.Sq(7, 4), chess.Sq(3, 4), false},
		{"positive diagonal clear", chess.Sq(4, 4), chess.Sq(7, 7), true},
		{"negative diagonal clear", chess.Sq(4, 4), chess.Sq(1, 7), true},
		{"diagonal blocked by pawn", chess.Sq(4, 4), chess.Sq(1, 1), false},
		{"diagonal ending on pawn", chess.Sq(4, 4), chess.Sq(2, 2), true},
		{"back rank blocked", chess.Sq(0, 0), chess.Sq(0, 7), false},
		{"back rank up to king", chess.Sq(0, 0), chess.Sq(0, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPathClear(&grid, tt.start, tt.end)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("IsPathClear(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsPathClear_InvalidGeometry(t *testing.T) {
	grid := chess.InitialGrid()

	tests := []struct {
		name       string
		start, end chess.Square
	}{
		{"knight shape", chess.Sq(7, 1), chess.Sq(5, 2)},
		{"arbitrary", chess.Sq(0, 0), chess.Sq(3, 7)},
		{"same square", chess.Sq(4, 4), chess.Sq(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IsPathClear(&grid, tt.start, tt.end)
			testutil.AssertErrorIs(t, err, errors.ErrInternal)
		})
	}
}

func TestIsPathClear_Symmetric(t *testing.T) {
	game := mustGame(t, middlegameFEN)
	grid := game.Pieces()

	for a := range allSquares() {
		for b := range allSquares() {
			if a == b || !isColinear(a, b) {
				continue
			}
			ab, err := IsPathClear(&grid, a, b)
			testutil.AssertNoError(t, err)
			ba, err := IsPathClear(&grid, b, a)
			testutil.AssertNoError(t, err)
			if ab != ba {
				t.Errorf("IsPathClear(%v, %v) = %v but IsPathClear(%v, %v) = %v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestIsKnightPath(t *testing.T) {
	from := chess.Sq(4, 4)
	want := map[chess.Square]bool{}
	for _, off := range knightOffsets {
		want[from.Offset(off.row, off.col)] = true
	}

	for to := range allSquares() {
		if got := IsKnightPath(from, to); got != want[to] {
			t.Errorf("IsKnightPath(%v, %v) = %v, want %v", from, to, got, want[to])
		}
	}
}

func TestIsOneApart(t *testing.T) {
	tests := []struct {
		to   chess.Square
		want bool
	}{
		{chess.Sq(3, 3), true},
		{chess.Sq(3, 4), true},
		{chess.Sq(5, 5), true},
		{chess.Sq(4, 3), true},
		{chess.Sq(4, 4), false},
		{chess.Sq(2, 4), false},
		{chess.Sq(6, 6), false},
	}

	for _, tt := range tests {
		if got := IsOneApart(chess.Sq(4, 4), tt.to); got != tt.want {
			t.Errorf("IsOneApart((4,4), %v) = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestFarEnoughFromOtherKing(t *testing.T) {
	grid := testutil.MustGrid(t, `
		........
		........
		........
		...k....
		........
		...K....
		........
		........
	`)

	tests := []struct {
		name     string
		from, to chess.Square
		want     bool
	}{
		{"white steps next to black king", chess.Sq(5, 3), chess.Sq(4, 3), false},
		{"white steps diagonally next to black king", chess.Sq(5, 3), chess.Sq(4, 2), false},
		{"white steps away", chess.Sq(5, 3), chess.Sq(6, 3), true},
		{"white steps sideways", chess.Sq(5, 3), chess.Sq(5, 4), true},
		{"black steps next to white king", chess.Sq(3, 3), chess.Sq(4, 4), false},
		{"black steps away", chess.Sq(3, 3), chess.Sq(2, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FarEnoughFromOtherKing(&grid, tt.from, tt.to); got != tt.want {
				t.Errorf("FarEnoughFromOtherKing(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSquaresBetween(t *testing.T) {
	got, err := squaresBetween(chess.Sq(0, 7), chess.Sq(3, 4))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []chess.Square{chess.Sq(1, 6), chess.Sq(2, 5)})

	got, err = squaresBetween(chess.Sq(2, 2), chess.Sq(2, 3))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 0)
}

// allSquares yields every board square.
func allSquares() map[chess.Square]struct{} {
	squares := make(map[chess.Square]struct{}, chess.BoardSize*chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			squares[chess.Sq(row, col)] = struct{}{}
		}
	}
	return squares
}
