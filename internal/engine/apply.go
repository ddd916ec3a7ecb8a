package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Rejection reasons reported through errors.MoveError.Reason.
const (
	ReasonNoOp          = "no-op move"
	ReasonOutOfBounds   = "square out of bounds"
	ReasonEmptySource   = "empty source"
	ReasonCaptureKing   = "cannot capture king"
	ReasonWrongTurn     = "wrong turn"
	ReasonCaptureOwn    = "cannot capture own piece"
	ReasonEndInCheck    = "cannot end turn in check"
	reasonPieceMovement = "invalid move for %s at %v"
)

// MovePiece validates and applies a move for the player to move.
//
// On success the board is updated, the opponent's check flag is recomputed,
// checkmate is resolved and the turn passes. On failure the game is exactly as
// it was before the call and the error unwraps to errors.ErrInvalidMove or
// errors.ErrInternal.
func (g *Game) MovePiece(from, to chess.Square) error {
	if from == to {
		return errors.Invalid(from, to, ReasonNoOp)
	}
	if !from.InBounds() || !to.InBounds() {
		return errors.Internal(from, to, ReasonOutOfBounds)
	}
	piece := g.grid.At(from)
	if piece == chess.Empty {
		return errors.Invalid(from, to, ReasonEmptySource)
	}
	captured := g.grid.At(to)
	if captured.Kind() == chess.King {
		return errors.Invalid(from, to, ReasonCaptureKing)
	}
	if !piece.BelongsTo(g.turn) {
		return errors.Invalid(from, to, ReasonWrongTurn)
	}
	if captured.BelongsTo(g.turn) {
		return errors.Invalid(from, to, ReasonCaptureOwn)
	}

	saved := g.SaveState()
	if err := g.applyMove(piece, from, to); err != nil {
		g.RestoreState(saved)
		return err
	}
	if err := g.settleMove(from, to); err != nil {
		g.RestoreState(saved)
		return err
	}

	g.turn = g.turn.Opposite()
	return nil
}

// applyMove checks the piece-specific movement rule and, if it holds,
// moves the piece. Nothing is mutated when the rule fails.
func (g *Game) applyMove(piece chess.Piece, from, to chess.Square) error {
	var legal bool
	var err error

	switch piece.Kind() {
	case chess.Pawn:
		legal = g.isPawnMove(from, to)
	case chess.Rook:
		legal, err = g.isSlidingMove(from, to, isStraight)
	case chess.Knight:
		legal = IsKnightPath(from, to)
	case chess.Bishop:
		legal, err = g.isSlidingMove(from, to, isDiagonal)
	case chess.Queen:
		legal, err = g.isSlidingMove(from, to, isColinear)
	case chess.King:
		legal = IsOneApart(from, to) && FarEnoughFromOtherKing(&g.grid, from, to)
	default:
		return errors.Internal(from, to, "unknown piece code %d", piece)
	}
	if err != nil {
		return err
	}
	if !legal {
		return errors.Invalid(from, to, reasonPieceMovement, piece.String(), from)
	}

	g.grid.Set(to, piece)
	g.grid.Set(from, chess.Empty)
	if piece.Kind() == chess.King {
		g.kings.set(g.turn, to)
	}
	return nil
}

// isPawnMove accepts a single forward step onto an empty square or a single
// forward diagonal step onto an enemy piece. There is no double step,
// en passant or promotion.
func (g *Game) isPawnMove(from, to chess.Square) bool {
	if to.Row-from.Row != g.turn.Forward() {
		return false
	}
	target := g.grid.At(to)
	switch abs(to.Col - from.Col) {
	case 0:
		return target == chess.Empty
	case 1:
		return target != chess.Empty && !target.BelongsTo(g.turn)
	}
	return false
}

// isSlidingMove accepts a move along a line matching shape whose interior is empty.
func (g *Game) isSlidingMove(from, to chess.Square, shape func(a, b chess.Square) bool) (bool, error) {
	if !shape(from, to) {
		return false, nil
	}
	return IsPathClear(&g.grid, from, to)
}

// settleMove runs the post-mutation checks: it records whether the opponent
// is now in check, rejects moves that leave the mover in check and resolves
// checkmate. The caller restores state on error.
func (g *Game) settleMove(from, to chess.Square) error {
	mover := g.turn
	opponent := mover.Opposite()

	opponentThreats, err := KingThreats(&g.grid, g.kings.get(opponent))
	if err != nil {
		return err
	}
	g.checks.set(opponent, len(opponentThreats) > 0)

	selfThreats, err := ThreatsTo(&g.grid, g.kings.get(mover))
	if err != nil {
		return err
	}
	if len(selfThreats) > 0 {
		return errors.Invalid(from, to, ReasonEndInCheck)
	}
	g.checks.set(mover, false)

	if len(opponentThreats) > 0 {
		return g.resolveCheckmate(opponent, opponentThreats)
	}
	return nil
}
