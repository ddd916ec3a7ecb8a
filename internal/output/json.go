package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// JSONBoard is the envelope sent after a successful move or a board request.
type JSONBoard struct {
	Success   bool      `json:"success"`
	Game      uuid.UUID `json:"game"`
	Pieces    [][]int   `json:"pieces"`
	Turn      string    `json:"turn"` // "white" or "black"
	InCheck   bool      `json:"inCheck"`
	Checkmate bool      `json:"checkmate"`
}

// JSONFailure is the envelope sent when a request is rejected.
type JSONFailure struct {
	Success bool      `json:"success"`
	Game    uuid.UUID `json:"game"`
	Message string    `json:"message"`
	Kind    string    `json:"kind,omitempty"` // "invalid move" or "internal error"
}

// JSONMessage carries free text such as help output.
type JSONMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BoardToJSON converts the state of a game to its success envelope.
func BoardToJSON(id uuid.UUID, game *engine.Game) *JSONBoard {
	return &JSONBoard{
		Success:   true,
		Game:      id,
		Pieces:    piecesToJSON(game.Pieces()),
		Turn:      strings.ToLower(game.WhoseTurn().String()),
		InCheck:   game.InCheck(),
		Checkmate: game.Checkmate(),
	}
}

// FailureToJSON converts a rejection to its failure envelope.
// Move errors report their reason; other errors their full text.
func FailureToJSON(id uuid.UUID, err error) *JSONFailure {
	jf := &JSONFailure{
		Game:    id,
		Message: errors.Reason(err),
	}
	if kind := errors.Kind(err); kind != nil {
		jf.Kind = kind.Error()
	}
	return jf
}

// piecesToJSON converts the grid to nested slices of signed piece codes.
func piecesToJSON(grid chess.Grid) [][]int {
	pieces := make([][]int, chess.BoardSize)
	for row := range pieces {
		pieces[row] = make([]int, chess.BoardSize)
		for col := range pieces[row] {
			pieces[row][col] = int(grid[row][col])
		}
	}
	return pieces
}

// writeJSONLine encodes v as a single line.
func writeJSONLine(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
