package suite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Result is the outcome of running one entry.
type Result struct {
	Name string

	// FEN is the exported final position; empty if the entry never got a board.
	FEN string

	// Failures lists every expectation that did not hold.
	Failures []string

	// Err is nil when the entry passed. Expectation mismatches wrap
	// ErrExpectationFailed; setup problems carry the engine error.
	Err error
}

// Passed reports whether the entry met every expectation.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner checks entries against the engine.
type Runner struct {
	// PerftWorkers bounds the goroutines used per perft expectation.
	PerftWorkers int
}

// Run sets up the entry's position, plays its moves and verifies its
// expectations. The context only bounds perft expectations.
func (r *Runner) Run(ctx context.Context, entry Entry) Result {
	result := Result{Name: entry.Name}

	board, err := engine.Import(entry.FEN)
	if err == nil {
		err = engine.Validate(board)
	}
	if entry.Expect.Invalid {
		if err == nil {
			result.FEN = engine.Export(board)
			result.fail("fen: accepted, want rejected")
		}
		return result.finish()
	}
	if err != nil {
		result.Err = errors.Wrapf(err, "entry %s", entry.Name)
		return result
	}

	if err := playMoves(board, entry, &result); err != nil {
		result.FEN = engine.Export(board)
		result.Err = errors.Wrapf(err, "entry %s", entry.Name)
		return result
	}
	result.FEN = engine.Export(board)

	if err := r.verify(ctx, board, entry.Expect, &result); err != nil {
		result.Err = errors.Wrapf(err, "entry %s", entry.Name)
		return result
	}
	return result.finish()
}

// playMoves applies the entry's moves. With an illegal expectation the final
// move must be rejected with ErrIllegalMove; acceptance is recorded as a failure.
func playMoves(board *chess.Board, entry Entry, result *Result) error {
	moves := entry.Moves
	if entry.Expect.Illegal {
		moves = moves[:len(moves)-1]
	}

	for i, text := range moves {
		if err := engine.Play(board, text); err != nil {
			return errors.Wrapf(err, "ply %d", i+1)
		}
	}

	if !entry.Expect.Illegal {
		return nil
	}
	last := entry.Moves[len(entry.Moves)-1]
	err := engine.Play(board, last)
	switch {
	case err == nil:
		result.fail("move %s: accepted, want rejected", last)
	case !errors.Is(err, errors.ErrIllegalMove):
		return errors.Wrapf(err, "move %s", last)
	}
	return nil
}

func (r *Runner) verify(ctx context.Context, board *chess.Board, want Expect, result *Result) error {
	if want.FEN != "" && result.FEN != want.FEN {
		result.fail("fen: got %q, want %q", result.FEN, want.FEN)
	}

	if want.Legal != nil {
		got := moveStrings(engine.LegalMoves(board))
		expected := append([]string(nil), want.Legal...)
		sort.Strings(expected)
		if strings.Join(got, " ") != strings.Join(expected, " ") {
			result.fail("legal: got [%s], want [%s]", strings.Join(got, " "), strings.Join(expected, " "))
		}
	}

	if want.Check != nil {
		if got := engine.InCheck(board, board.ToMove()); got != *want.Check {
			result.fail("check: got %v, want %v", got, *want.Check)
		}
	}

	if want.Status != "" {
		if got := engine.Status(board).String(); got != want.Status {
			result.fail("status: got %s, want %s", got, want.Status)
		}
	}

	depths := make([]int, 0, len(want.Perft))
	for depth := range want.Perft {
		depths = append(depths, depth)
	}
	sort.Ints(depths)

	for _, depth := range depths {
		got, err := engine.PerftParallel(ctx, board, depth, r.PerftWorkers)
		if err != nil {
			return err
		}
		if got != want.Perft[depth] {
			result.fail("perft(%d): got %d, want %d", depth, got, want.Perft[depth])
		}
	}
	return nil
}

func (r *Result) fail(format string, args ...interface{}) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// finish sets Err from the recorded failures.
func (r Result) finish() Result {
	if len(r.Failures) > 0 {
		r.Err = errors.Wrapf(errors.ErrExpectationFailed, "entry %s: %s", r.Name, strings.Join(r.Failures, "; "))
	}
	return r
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
