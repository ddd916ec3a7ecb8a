// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
)

// kingRegistry records where each king stands. It is a plain value so a
// saved copy never shares storage with the live registry.
type kingRegistry struct {
	white chess.Square
	black chess.Square
}

func (k kingRegistry) get(player chess.Player) chess.Square {
	if player == chess.White {
		return k.white
	}
	return k.black
}

func (k *kingRegistry) set(player chess.Player, sq chess.Square) {
	if player == chess.White {
		k.white = sq
	} else {
		k.black = sq
	}
}

// checkState records whether each player's king is in check.
type checkState struct {
	white bool
	black bool
}

func (c checkState) get(player chess.Player) bool {
	if player == chess.White {
		return c.white
	}
	return c.black
}

func (c *checkState) set(player chess.Player, inCheck bool) {
	if player == chess.White {
		c.white = inCheck
	} else {
		c.black = inCheck
	}
}

// Game is the mutable state of one chess game. A Game is not safe for
// concurrent use; callers serialise moves.
type Game struct {
	grid      chess.Grid
	turn      chess.Player
	checks    checkState
	kings     kingRegistry
	checkmate bool
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		grid: chess.InitialGrid(),
		turn: chess.White,
		kings: kingRegistry{
			white: chess.Sq(7, 4),
			black: chess.Sq(0, 4),
		},
	}
}

// GameState captures everything a move may touch, for save/restore around
// tentative mutations.
type GameState struct {
	Grid      chess.Grid
	Turn      chess.Player
	Checks    [2]bool // White, Black
	Kings     [2]chess.Square
	Checkmate bool
}

// SaveState captures the current game state for later restoration.
func (g *Game) SaveState() GameState {
	return GameState{
		Grid:      g.grid,
		Turn:      g.turn,
		Checks:    [2]bool{g.checks.white, g.checks.black},
		Kings:     [2]chess.Square{g.kings.white, g.kings.black},
		Checkmate: g.checkmate,
	}
}

// RestoreState restores the game to a previously saved state.
func (g *Game) RestoreState(s GameState) {
	g.grid = s.Grid
	g.turn = s.Turn
	g.checks = checkState{white: s.Checks[0], black: s.Checks[1]}
	g.kings = kingRegistry{white: s.Kings[0], black: s.Kings[1]}
	g.checkmate = s.Checkmate
}

// Pieces returns a copy of the board.
func (g *Game) Pieces() chess.Grid {
	return g.grid
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.grid.At(sq)
}

// WhoseTurn returns the player to move.
func (g *Game) WhoseTurn() chess.Player {
	return g.turn
}

// InCheck reports whether the player to move is in check.
func (g *Game) InCheck() bool {
	return g.checks.get(g.turn)
}

// PlayerInCheck reports the tracked check flag for player.
func (g *Game) PlayerInCheck(player chess.Player) bool {
	return g.checks.get(player)
}

// Checkmate reports whether the game has ended in checkmate.
// The mated side is the player to move.
func (g *Game) Checkmate() bool {
	return g.checkmate
}

// KingSquare returns where player's king stands.
func (g *Game) KingSquare(player chess.Player) chess.Square {
	return g.kings.get(player)
}

// String dumps the board as tab separated piece codes, one row per line.
func (g *Game) String() string {
	return g.grid.String()
}
