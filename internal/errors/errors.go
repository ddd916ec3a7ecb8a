// Package errors provides sentinel errors and error types for the chess engine.
// It defines the two failure kinds a move can produce and a structured error
// type that preserves move context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a user-correctable move rejection. The board
	// is unchanged and the caller may retry with another move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInternal indicates a caller contract violation or a broken engine
	// invariant. Retrying the same request will not help.
	ErrInternal = errors.New("internal error")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates an invalid configuration setting.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the squares involved and a
// human-readable reason. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error        // ErrInvalidMove or ErrInternal
	From   chess.Square // Source square of the request
	To     chess.Square // Destination square of the request
	Reason string       // Short description suitable for display
}

// Error returns a formatted error message including the squares and reason.
func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("%v->%v", e.From, e.To)}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error kind.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Invalid builds a user-correctable MoveError.
func Invalid(from, to chess.Square, format string, args ...interface{}) *MoveError {
	return &MoveError{Err: ErrInvalidMove, From: from, To: to, Reason: fmt.Sprintf(format, args...)}
}

// Internal builds a contract-violation MoveError.
func Internal(from, to chess.Square, format string, args ...interface{}) *MoveError {
	return &MoveError{Err: ErrInternal, From: from, To: to, Reason: fmt.Sprintf(format, args...)}
}

// Reason extracts the display reason from err. For a MoveError this is its
// Reason field; for any other error it is the full message.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var moveErr *MoveError
	if errors.As(err, &moveErr) && moveErr.Reason != "" {
		return moveErr.Reason
	}
	return err.Error()
}

// Kind returns the sentinel classifying err: ErrInvalidMove, ErrInternal,
// or nil when err is neither.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrInvalidMove):
		return ErrInvalidMove
	case errors.Is(err, ErrInternal):
		return ErrInternal
	}
	return nil
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// New returns an error with the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
