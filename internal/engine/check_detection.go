package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// maxCheckers is the most attackers a king can face at once in a position
// reachable by legal play.
const maxCheckers = 2

// ray is a scan direction together with the piece types that capture along it.
type ray struct {
	offset
	diagonal bool
}

// rays are the four straight and four diagonal scan directions.
var rays = [8]ray{
	{offset{-1, 0}, false}, // up
	{offset{1, 0}, false},  // down
	{offset{0, -1}, false}, // left
	{offset{0, 1}, false},  // right
	{offset{-1, -1}, true}, // up left
	{offset{-1, 1}, true},  // up right
	{offset{1, 1}, true},   // down right
	{offset{1, -1}, true},  // down left
}

// threatensAlong reports whether an enemy piece found distance squares away
// along r can capture back toward the origin of the ray.
//
// A pawn threatens on any diagonal one row away, whichever way it faces.
// Pawn threats are therefore over-reported for pawns standing behind the
// target square.
func threatensAlong(r ray, piece chess.Piece, distance int) bool {
	switch piece.Kind() {
	case chess.Queen:
		return true
	case chess.Rook:
		return !r.diagonal
	case chess.Bishop:
		return r.diagonal
	case chess.Pawn:
		return r.diagonal && distance == 1
	}
	return false
}

// castRay walks from origin along r and returns the first occupied square if
// it holds an enemy of target able to capture along the ray.
func castRay(grid *chess.Grid, origin chess.Square, target chess.Piece, r ray) (chess.Square, bool) {
	sq := origin.Offset(r.row, r.col)
	for distance := 1; sq.InBounds(); distance++ {
		piece := grid.At(sq)
		if piece != chess.Empty {
			if piece.IsEnemyOf(target) && threatensAlong(r, piece, distance) {
				return sq, true
			}
			return chess.Square{}, false
		}
		sq = sq.Offset(r.row, r.col)
	}
	return chess.Square{}, false
}

// ThreatsTo returns the enemy-occupied squares from which the piece on sq
// could be captured on the opponent's next move. Kings never count as
// attackers. The result is computed from the current grid and never cached.
func ThreatsTo(grid *chess.Grid, sq chess.Square) ([]chess.Square, error) {
	if !sq.InBounds() {
		return nil, errors.Internal(sq, sq, "threat scan out of bounds")
	}
	target := grid.At(sq)
	if target == chess.Empty {
		return nil, errors.Internal(sq, sq, "threat scan of empty square")
	}

	var threats []chess.Square

	// Knights jump, so only the landing squares matter.
	for _, off := range knightOffsets {
		from := sq.Offset(off.row, off.col)
		if !from.InBounds() {
			continue
		}
		if piece := grid.At(from); piece.Kind() == chess.Knight && piece.IsEnemyOf(target) {
			threats = append(threats, from)
		}
	}

	for _, r := range rays {
		if from, ok := castRay(grid, sq, target, r); ok {
			threats = append(threats, from)
		}
	}

	return threats, nil
}

// KingThreats returns the squares attacking the king standing on king.
// More than two attackers is an engine consistency failure.
func KingThreats(grid *chess.Grid, king chess.Square) ([]chess.Square, error) {
	threats, err := ThreatsTo(grid, king)
	if err != nil {
		return nil, err
	}
	if len(threats) > maxCheckers {
		return nil, errors.Internal(king, king, "king attacked by %d pieces at once", len(threats))
	}
	return threats, nil
}

// IsInCheck returns true if player's king is threatened.
func (g *Game) IsInCheck(player chess.Player) (bool, error) {
	threats, err := ThreatsTo(&g.grid, g.kings.get(player))
	if err != nil {
		return false, err
	}
	return len(threats) > 0, nil
}

// ThreatsTo returns the squares threatening the piece on sq.
func (g *Game) ThreatsTo(sq chess.Square) ([]chess.Square, error) {
	return ThreatsTo(&g.grid, sq)
}
