package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// resolveCheckmate decides whether defender, attacked from the given squares,
// has any response, and sets the checkmate flag when it has none. Every
// tentative mutation is undone before returning.
//
// This is a one-ply confirmation: a king step to a safe square, a capture of
// a lone checker, or an interposition on its line. A double check with no
// king escape is mate.
func (g *Game) resolveCheckmate(defender chess.Player, checkers []chess.Square) error {
	if len(checkers) == 0 {
		return nil
	}

	escape, err := g.hasKingEscape(defender)
	if err != nil || escape {
		return err
	}

	if len(checkers) == 1 {
		defended, err := g.canDefendAgainst(defender, checkers[0])
		if err != nil || defended {
			return err
		}
	}

	g.checkmate = true
	return nil
}

// hasKingEscape tries each king step for defender and reports whether any
// leaves the king unthreatened.
func (g *Game) hasKingEscape(defender chess.Player) (bool, error) {
	from := g.kings.get(defender)
	king := g.grid.At(from)

	for _, off := range kingOffsets {
		to := from.Offset(off.row, off.col)
		if !to.InBounds() {
			continue
		}
		occupant := g.grid.At(to)
		if occupant.BelongsTo(defender) || occupant.Kind() == chess.King {
			continue
		}
		// Kings are never attackers, so adjacency to the other king is checked here.
		if !FarEnoughFromOtherKing(&g.grid, from, to) {
			continue
		}

		safe, err := g.tryKingStep(defender, king, from, to, occupant)
		if err != nil || safe {
			return safe, err
		}
	}
	return false, nil
}

// tryKingStep moves the king from one square to another, checks the new
// square for threats and unconditionally puts everything back.
func (g *Game) tryKingStep(defender chess.Player, king chess.Piece, from, to chess.Square, occupant chess.Piece) (bool, error) {
	g.grid.Set(to, king)
	g.grid.Set(from, chess.Empty)
	g.kings.set(defender, to)
	defer func() {
		g.grid.Set(from, king)
		g.grid.Set(to, occupant)
		g.kings.set(defender, from)
	}()

	threats, err := ThreatsTo(&g.grid, to)
	if err != nil {
		return false, err
	}
	return len(threats) == 0, nil
}

// canDefendAgainst reports whether defender can capture the lone checker or,
// for a sliding checker, interpose on the line between it and the king.
func (g *Game) canDefendAgainst(defender chess.Player, checker chess.Square) (bool, error) {
	capturers, err := ThreatsTo(&g.grid, checker)
	if err != nil {
		return false, err
	}
	if len(capturers) > 0 {
		return true, nil
	}

	attacker := g.grid.At(checker)
	if attacker.Kind() == chess.Knight {
		return false, nil
	}

	king := g.kings.get(defender)
	between, err := squaresBetween(king, checker)
	if err != nil {
		return false, errors.Wrap(err, "checker not on a line with the king")
	}
	for _, sq := range between {
		blocked, err := g.tryBlock(sq, attacker)
		if err != nil || blocked {
			return blocked, err
		}
	}
	return false, nil
}

// tryBlock stands a copy of the attacker on sq and reports whether a defender
// could capture it there, meaning a defender can reach sq to block.
func (g *Game) tryBlock(sq chess.Square, attacker chess.Piece) (bool, error) {
	original := g.grid.At(sq)
	g.grid.Set(sq, attacker)
	defer g.grid.Set(sq, original)

	threats, err := ThreatsTo(&g.grid, sq)
	if err != nil {
		return false, err
	}
	return len(threats) > 0, nil
}
