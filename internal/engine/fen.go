package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewGameFromFEN creates a game from the placement and side-to-move fields
// of a FEN string. Castling, en passant and clock fields are ignored.
// Each side must have exactly one king.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Game{turn: chess.White}

	if err := parsePiecePositions(&g.grid, parts[0]); err != nil {
		return nil, err
	}
	if err := locateKings(g); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}

	for _, player := range []chess.Player{chess.White, chess.Black} {
		threats, err := KingThreats(&g.grid, g.kings.get(player))
		if err != nil {
			return nil, errors.Wrap(err, "FEN position")
		}
		g.checks.set(player, len(threats) > 0)
	}
	if g.checks.get(g.turn.Opposite()) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}

	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The first rank listed is row 0.
func parsePiecePositions(grid *chess.Grid, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d too long: %w", row, errors.ErrInvalidFEN)
				}

				player := chess.White
				if unicode.IsLower(c) {
					player = chess.Black
				}
				grid.Set(chess.Sq(row, col), chess.MakePiece(player, piece))
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// locateKings fills the king registry, requiring one king per side.
func locateKings(g *Game) error {
	for _, player := range []chess.Player{chess.White, chess.Black} {
		king := chess.MakePiece(player, chess.King)
		if n := g.grid.Count(king); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", player, n, errors.ErrInvalidFEN)
		}
		sq, _ := g.grid.Find(king)
		g.kings.set(player, sq)
	}
	if !FarEnoughFromOtherKing(&g.grid, g.kings.white, g.kings.white) {
		return fmt.Errorf("kings are adjacent: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.turn = chess.White
	case "b":
		g.turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// FEN returns the piece placement and side to move of the game.
func (g *Game) FEN() string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.grid.At(chess.Sq(row, col))
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if g.turn == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
