package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// pieceLetters maps diagram letters to piece codes.
var pieceLetters = map[rune]chess.Piece{
	'P': chess.W(chess.Pawn), 'R': chess.W(chess.Rook), 'N': chess.W(chess.Knight),
	'B': chess.W(chess.Bishop), 'Q': chess.W(chess.Queen), 'K': chess.W(chess.King),
	'p': chess.B(chess.Pawn), 'r': chess.B(chess.Rook), 'n': chess.B(chess.Knight),
	'b': chess.B(chess.Bishop), 'q': chess.B(chess.Queen), 'k': chess.B(chess.King),
	'.': chess.Empty,
}

// MustGrid builds a grid from an 8-line diagram, row 0 first. Upper case
// letters are White, lower case Black and '.' is empty. Blank lines and
// spaces are ignored. It calls t.Fatal on a malformed diagram.
func MustGrid(t *testing.T, diagram string) chess.Grid {
	t.Helper()
	var grid chess.Grid
	row := 0
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= chess.BoardSize {
			t.Fatalf("diagram has more than %d rows", chess.BoardSize)
		}
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d = %q, want %d squares", row, line, chess.BoardSize)
		}
		for col, c := range line {
			piece, ok := pieceLetters[c]
			if !ok {
				t.Fatalf("diagram row %d: unknown piece letter %q", row, c)
			}
			grid[row][col] = piece
		}
		row++
	}
	if row != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", row, chess.BoardSize)
	}
	return grid
}

// AssertGrid compares two grids square by square.
func AssertGrid(t *testing.T, got, want chess.Grid, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, "grid mismatch (-want +got):\n"+diff+"\nwant:\n"+want.String()+"got:\n"+got.String(), msgAndArgs...)
	}
}
