// Package errors provides sentinel errors and error types for chesscore.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed square or move string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidPieceLetter indicates an unrecognised piece letter.
	ErrInvalidPieceLetter = errors.New("invalid piece letter")

	// ErrInvalidSideToMove indicates a side-to-move field other than "w" or "b".
	ErrInvalidSideToMove = errors.New("invalid side to move")

	// ErrFieldMissing indicates a FEN string with fewer than six fields.
	ErrFieldMissing = errors.New("field missing")

	// ErrRankOverflow indicates a FEN rank describing more than eight files.
	ErrRankOverflow = errors.New("rank overflow")

	// ErrRankIncomplete indicates a FEN rank describing fewer than eight files.
	ErrRankIncomplete = errors.New("rank incomplete")

	// ErrRankCount indicates a placement field without exactly eight ranks.
	ErrRankCount = errors.New("wrong number of ranks")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSuite indicates a position suite that cannot be loaded.
	ErrInvalidSuite = errors.New("invalid position suite")

	// ErrExpectationFailed indicates a suite entry whose result differs from its expectation.
	ErrExpectationFailed = errors.New("expectation failed")

	// ErrInvalidConfig indicates an inconsistent combination of settings.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NotationError wraps a parsing failure with the field and text that caused it.
// It is used for square notation, piece letters and every FEN field.
type NotationError struct {
	Err   error  // The underlying error
	Field string // Name of the field being parsed (e.g. "side to move")
	Text  string // The offending text
}

// Error returns a formatted error message including all available context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "notation error"
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// MoveError reports a rejected move request. The board it was made against
// is left unchanged.
type MoveError struct {
	Err    error  // The underlying error
	From   string // Origin square in notation
	To     string // Destination square in notation
	Reason string // Short explanation (e.g. "empty square")
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
