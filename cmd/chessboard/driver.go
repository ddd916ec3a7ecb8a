// driver.go - Command loop between the terminal and the game session
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/output"
	"github.com/lgbarn/chessboard-go/internal/session"
)

const helpText = `Commands:
  r1 c1 r2 c2         move the piece on (r1,c1) to (r2,c2)
  move r1 c1 r2 c2    same as above
  board               show the board
  status              show whose turn it is and the check state
  reset               start the game again
  help                show this text
  quit, exit          leave
Rows and columns run 0-7; row 0 is Black's back rank.
`

// maxLineLength bounds a single command line. Longer lines are consumed and
// rejected without ending the session.
const maxLineLength = 4096

var (
	// errGameOver rejects moves after checkmate until the game is reset.
	errGameOver = errors.New("game over: checkmate, use reset to play again")

	errLineTooLong = fmt.Errorf("input line longer than %d bytes", maxLineLength)
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdBoard
	cmdStatus
	cmdReset
	cmdHelp
	cmdQuit
)

var commandNames = map[string]commandKind{
	"board":  cmdBoard,
	"status": cmdStatus,
	"reset":  cmdReset,
	"help":   cmdHelp,
	"quit":   cmdQuit,
	"exit":   cmdQuit,
}

// command is one parsed input line.
type command struct {
	kind     commandKind
	from, to chess.Square
}

// parseCommand parses an input line. Blank lines yield cmdNone.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}

	if fields[0] == "move" {
		return parseMove(fields[1:])
	}
	if kind, ok := commandNames[fields[0]]; ok {
		if len(fields) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments", fields[0])
		}
		return command{kind: kind}, nil
	}
	if len(fields) == 4 {
		return parseMove(fields)
	}
	return command{}, fmt.Errorf("unknown command %q, type help for a list", fields[0])
}

// parseMove parses four integer coordinates. Range checks are left to the
// engine.
func parseMove(fields []string) (command, error) {
	if len(fields) != 4 {
		return command{}, fmt.Errorf("a move needs 4 coordinates, got %d", len(fields))
	}
	var coords [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return command{}, fmt.Errorf("coordinate %q is not a number", f)
		}
		coords[i] = n
	}
	return command{
		kind: cmdMove,
		from: chess.Sq(coords[0], coords[1]),
		to:   chess.Sq(coords[2], coords[3]),
	}, nil
}

// driver owns one game session and answers commands for it.
type driver struct {
	cfg   *config.Config
	games *session.Manager
	id    uuid.UUID
	out   output.ResponseWriter
}

// newDriver registers a game from the configured starting position.
func newDriver(cfg *config.Config) (*driver, error) {
	games := session.NewManager()
	s, err := games.NewGame(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}

	if cfg.Logs(config.Sessions) {
		fmt.Fprintf(cfg.LogFile, "Created game %s from %s\n", s.ID, s.Game.FEN())
	}

	return &driver{
		cfg:   cfg,
		games: games,
		id:    s.ID,
		out:   output.NewResponseWriter(cfg.OutputFile, cfg),
	}, nil
}

// run writes the starting board and then executes commands read from r
// until quit or end of input.
func (d *driver) run(r io.Reader) error {
	if err := d.writeBoard(); err != nil {
		return err
	}

	reader := bufio.NewReader(r)
	for {
		d.writePrompt()
		line, tooLong, err := readLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tooLong {
			if err := d.out.WriteFailure(d.id, errLineTooLong); err != nil {
				return err
			}
			continue
		}
		quit, err := d.execute(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is read to its end and reported with tooLong set.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong && len(buf)+len(chunk) <= maxLineLength {
			buf = append(buf, chunk...)
		} else {
			tooLong = true
			buf = nil
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (d *driver) writePrompt() {
	if d.cfg.Output.Prompt == "" || d.cfg.Output.JSONFormat {
		return
	}
	fmt.Fprint(d.cfg.OutputFile, d.cfg.Output.Prompt)
}

// execute runs one input line. The returned error is only set when writing
// the response fails.
func (d *driver) execute(line string) (quit bool, err error) {
	cmd, perr := parseCommand(line)
	if perr != nil {
		return false, d.out.WriteFailure(d.id, perr)
	}

	switch cmd.kind {
	case cmdNone:
		return false, nil
	case cmdMove:
		return false, d.move(cmd.from, cmd.to)
	case cmdBoard:
		return false, d.writeBoard()
	case cmdStatus:
		s, err := d.games.Get(d.id)
		if err != nil {
			return false, d.out.WriteFailure(d.id, err)
		}
		return false, d.out.WriteStatus(d.id, s.Game)
	case cmdReset:
		return false, d.reset()
	case cmdHelp:
		return false, d.out.WriteMessage(strings.TrimSuffix(helpText, "\n"))
	case cmdQuit:
		if d.cfg.Logs(config.Sessions) {
			fmt.Fprintf(d.cfg.LogFile, "Leaving game %s\n", d.id)
		}
		return true, nil
	}
	return false, nil
}

func (d *driver) move(from, to chess.Square) error {
	s, err := d.games.Get(d.id)
	if err != nil {
		return d.out.WriteFailure(d.id, err)
	}
	if s.Game.Checkmate() {
		return d.out.WriteFailure(d.id, errGameOver)
	}

	s, err = d.games.Move(d.id, from, to)
	if err != nil {
		if d.cfg.Logs(config.Sessions) {
			fmt.Fprintf(d.cfg.LogFile, "Rejected move %v->%v: %v\n", from, to, err)
		}
		return d.out.WriteFailure(d.id, err)
	}

	if d.cfg.Logs(config.Moves) {
		fmt.Fprintf(d.cfg.LogFile, "Move %d: %v->%v\n", s.Moves, from, to)
	}
	if d.cfg.Logs(config.Sessions) {
		switch {
		case s.Game.Checkmate():
			fmt.Fprintf(d.cfg.LogFile, "Checkmate after move %d, %s wins\n", s.Moves, s.Game.WhoseTurn().Opposite())
		case s.Game.InCheck():
			fmt.Fprintf(d.cfg.LogFile, "%s in check after move %d\n", s.Game.WhoseTurn(), s.Moves)
		}
	}
	return d.out.WriteBoard(d.id, s.Game)
}

func (d *driver) reset() error {
	s, err := d.games.Reset(d.id)
	if err != nil {
		return d.out.WriteFailure(d.id, err)
	}
	if d.cfg.Logs(config.Sessions) {
		fmt.Fprintf(d.cfg.LogFile, "Reset game %s\n", d.id)
	}
	return d.out.WriteBoard(d.id, s.Game)
}

func (d *driver) writeBoard() error {
	s, err := d.games.Get(d.id)
	if err != nil {
		return d.out.WriteFailure(d.id, err)
	}
	return d.out.WriteBoard(d.id, s.Game)
}
