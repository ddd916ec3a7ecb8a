// Package output provides board rendering and response formatting for the
// chessboard driver.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// ResponseWriter is the interface for answering driver commands.
// Different implementations handle different output formats (text, JSON).
type ResponseWriter interface {
	// WriteBoard writes the board after a move or on request.
	WriteBoard(id uuid.UUID, game *engine.Game) error

	// WriteStatus writes whose turn it is and the check state.
	WriteStatus(id uuid.UUID, game *engine.Game) error

	// WriteFailure reports a rejected command or move.
	WriteFailure(id uuid.UUID, err error) error

	// WriteMessage writes free text such as help output.
	WriteMessage(msg string) error
}

// NewResponseWriter creates the writer selected by cfg.
func NewResponseWriter(w io.Writer, cfg *config.Config) ResponseWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.Color)
}

// TextWriter writes boards as text for a terminal.
type TextWriter struct {
	w      io.Writer
	styled bool
}

// NewTextWriter creates a new text writer. When styled is set boards are
// rendered with RenderStyled, otherwise with RenderPlain.
func NewTextWriter(w io.Writer, styled bool) *TextWriter {
	return &TextWriter{
		w:      w,
		styled: styled,
	}
}

// WriteBoard writes the board followed by any check or checkmate notice.
func (tw *TextWriter) WriteBoard(_ uuid.UUID, game *engine.Game) error {
	var sb strings.Builder
	if tw.styled {
		sb.WriteString(RenderStyled(game.Pieces()))
	} else {
		sb.WriteString(RenderPlain(game.Pieces()))
	}
	switch {
	case game.Checkmate():
		fmt.Fprintf(&sb, "Checkmate: %s wins\n", game.WhoseTurn().Opposite())
	case game.InCheck():
		fmt.Fprintf(&sb, "%s is in check\n", game.WhoseTurn())
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteStatus writes one line per field.
func (tw *TextWriter) WriteStatus(id uuid.UUID, game *engine.Game) error {
	_, err := fmt.Fprintf(tw.w, "game: %s\nturn: %s\nin check: %t\ncheckmate: %t\n",
		id, game.WhoseTurn(), game.InCheck(), game.Checkmate())
	return err
}

// WriteFailure writes the reason and, for move errors, the failure kind.
func (tw *TextWriter) WriteFailure(_ uuid.UUID, err error) error {
	if kind := errors.Kind(err); kind != nil {
		_, werr := fmt.Fprintf(tw.w, "error: %s (%s)\n", errors.Reason(err), kind)
		return werr
	}
	_, werr := fmt.Fprintf(tw.w, "error: %s\n", errors.Reason(err))
	return werr
}

// WriteMessage writes msg with a trailing newline.
func (tw *TextWriter) WriteMessage(msg string) error {
	_, err := fmt.Fprintln(tw.w, msg)
	return err
}

// JSONWriter writes one JSON envelope per line.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteBoard writes a success envelope.
func (jw *JSONWriter) WriteBoard(id uuid.UUID, game *engine.Game) error {
	return writeJSONLine(jw.w, BoardToJSON(id, game))
}

// WriteStatus writes the same envelope as WriteBoard.
func (jw *JSONWriter) WriteStatus(id uuid.UUID, game *engine.Game) error {
	return jw.WriteBoard(id, game)
}

// WriteFailure writes a failure envelope.
func (jw *JSONWriter) WriteFailure(id uuid.UUID, err error) error {
	return writeJSONLine(jw.w, FailureToJSON(id, err))
}

// WriteMessage writes a message envelope.
func (jw *JSONWriter) WriteMessage(msg string) error {
	return writeJSONLine(jw.w, &JSONMessage{Success: true, Message: msg})
}
