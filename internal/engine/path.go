package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// WithinBounds reports whether both coordinates of sq lie in [0,7].
func WithinBounds(sq chess.Square) bool {
	return sq.InBounds()
}

// isColinear reports whether two squares share a row, a column or a diagonal.
func isColinear(start, end chess.Square) bool {
	rowDiff := abs(end.Row - start.Row)
	colDiff := abs(end.Col - start.Col)
	return rowDiff == 0 || colDiff == 0 || rowDiff == colDiff
}

// isStraight reports whether two squares share a row or a column.
func isStraight(start, end chess.Square) bool {
	return start.Row == end.Row || start.Col == end.Col
}

// isDiagonal reports whether two squares share a diagonal.
func isDiagonal(start, end chess.Square) bool {
	return abs(end.Row-start.Row) == abs(end.Col-start.Col)
}

// squaresBetween returns the squares strictly between start and end, walking
// from start. Same-sign row and column deltas give the positive diagonal,
// opposite signs the negative one.
func squaresBetween(start, end chess.Square) ([]chess.Square, error) {
	if start == end || !isColinear(start, end) {
		return nil, errors.Internal(start, end, "squares are not colinear")
	}
	rowDir := sign(end.Row - start.Row)
	colDir := sign(end.Col - start.Col)

	var between []chess.Square
	for sq := start.Offset(rowDir, colDir); sq != end; sq = sq.Offset(rowDir, colDir) {
		between = append(between, sq)
	}
	return between, nil
}

// IsPathClear reports whether every square strictly between start and end is
// empty. start and end must be distinct and colinear; anything else is an
// ErrInternal geometry violation.
func IsPathClear(grid *chess.Grid, start, end chess.Square) (bool, error) {
	between, err := squaresBetween(start, end)
	if err != nil {
		return false, err
	}
	for _, sq := range between {
		if grid.At(sq) != chess.Empty {
			return false, nil
		}
	}
	return true, nil
}

// IsKnightPath reports whether the move has the 1x2 knight shape.
func IsKnightPath(start, end chess.Square) bool {
	rowDiff := abs(start.Row - end.Row)
	colDiff := abs(start.Col - end.Col)
	return max(rowDiff, colDiff) == 2 && min(rowDiff, colDiff) == 1
}

// IsOneApart reports whether the move is a single king step, diagonals included.
func IsOneApart(start, end chess.Square) bool {
	rowDiff := abs(start.Row - end.Row)
	colDiff := abs(start.Col - end.Col)
	return max(rowDiff, colDiff) == 1
}

// FarEnoughFromOtherKing reports whether no neighbour of end holds the king
// opposing the piece standing on start. Kings may never become adjacent.
func FarEnoughFromOtherKing(grid *chess.Grid, start, end chess.Square) bool {
	owner, ok := grid.At(start).Owner()
	if !ok {
		return true
	}
	otherKing := chess.MakePiece(owner.Opposite(), chess.King)
	for _, off := range kingOffsets {
		sq := end.Offset(off.row, off.col)
		if sq.InBounds() && grid.At(sq) == otherKing {
			return false
		}
	}
	return true
}
