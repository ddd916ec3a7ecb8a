package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestBoardToJSON(t *testing.T) {
	id := uuid.New()
	game := engine.NewGame()

	jb := BoardToJSON(id, game)

	testutil.AssertTrue(t, jb.Success)
	testutil.AssertEqual(t, jb.Game, id)
	testutil.AssertEqual(t, jb.Turn, "white")
	testutil.AssertFalse(t, jb.InCheck)
	testutil.AssertFalse(t, jb.Checkmate)
	testutil.AssertEqual(t, len(jb.Pieces), chess.BoardSize)
	testutil.AssertEqual(t, jb.Pieces[0], []int{-2, -3, -4, -5, -6, -4, -3, -2})
	testutil.AssertEqual(t, jb.Pieces[6], []int{1, 1, 1, 1, 1, 1, 1, 1})
	testutil.AssertEqual(t, jb.Pieces[4], []int{0, 0, 0, 0, 0, 0, 0, 0})
}

func TestBoardToJSON_Checkmate(t *testing.T) {
	game, err := engine.NewGameFromFEN("7k/Q7/7B/8/8/8/8/4K3 w")
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, game.MovePiece(chess.Sq(1, 0), chess.Sq(1, 6)))

	jb := BoardToJSON(uuid.New(), game)
	testutil.AssertEqual(t, jb.Turn, "black")
	testutil.AssertTrue(t, jb.InCheck)
	testutil.AssertTrue(t, jb.Checkmate)
	testutil.AssertEqual(t, jb.Pieces[1][6], int(chess.W(chess.Queen)))
}

func TestFailureToJSON(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantKind    string
	}{
		{
			name:        "invalid move",
			err:         errors.Invalid(chess.Sq(6, 4), chess.Sq(6, 4), engine.ReasonNoOp),
			wantMessage: engine.ReasonNoOp,
			wantKind:    "invalid move",
		},
		{
			name:        "internal error",
			err:         errors.Internal(chess.Sq(9, 0), chess.Sq(0, 0), engine.ReasonOutOfBounds),
			wantMessage: engine.ReasonOutOfBounds,
			wantKind:    "internal error",
		},
		{
			name:        "other error",
			err:         errors.Wrap(errors.ErrGameNotFound, "reset"),
			wantMessage: "reset: game not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jf := FailureToJSON(id, tt.err)
			testutil.AssertFalse(t, jf.Success)
			testutil.AssertEqual(t, jf.Game, id)
			testutil.AssertEqual(t, jf.Message, tt.wantMessage)
			testutil.AssertEqual(t, jf.Kind, tt.wantKind)
		})
	}
}

// TestJSONWriter_OneLinePerEnvelope verifies envelopes are newline delimited
func TestJSONWriter_OneLinePerEnvelope(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()
	game := engine.NewGame()
	jw := NewJSONWriter(&buf)

	testutil.AssertNoError(t, jw.WriteBoard(id, game))
	testutil.AssertNoError(t, jw.WriteFailure(id, errors.Invalid(chess.Sq(4, 4), chess.Sq(3, 4), engine.ReasonEmptySource)))
	testutil.AssertNoError(t, jw.WriteMessage("hello"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 3)

	var board JSONBoard
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[0]), &board))
	testutil.AssertEqual(t, board, *BoardToJSON(id, game))

	var raw map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &raw))
	testutil.AssertEqual(t, raw, map[string]interface{}{
		"success": false,
		"game":    id.String(),
		"message": engine.ReasonEmptySource,
		"kind":    "invalid move",
	})

	testutil.AssertEqual(t, lines[2], `{"success":true,"message":"hello"}`)
}
