package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// MustSquare parses algebraic notation, failing the test on error.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

// MoveStrings renders moves in long algebraic form, sorted so that sets of
// moves can be compared regardless of generation order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// Destinations returns the sorted destination squares of moves.
func Destinations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To.String()
	}
	sort.Strings(out)
	return out
}

// AssertSameBoard fails if the two boards differ in any square (moved flags
// included), side to move or en passant target.
func AssertSameBoard(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, got.String(), want.String(), msgAndArgs...)
	for _, sq := range chess.Squares() {
		if got.Get(sq) != want.Get(sq) {
			t.Errorf("%s: square %v = %v (moved %v), want %v (moved %v)", formatMessage(msgAndArgs...),
				sq, got.Get(sq), got.Get(sq).Moved(), want.Get(sq), want.Get(sq).Moved())
		}
	}
	AssertEqual(t, got.ToMove(), want.ToMove(), msgAndArgs...)

	gotEP, gotOK := got.EnPassant()
	wantEP, wantOK := want.EnPassant()
	AssertEqual(t, gotOK, wantOK, msgAndArgs...)
	if gotOK && wantOK {
		AssertEqual(t, gotEP, wantEP, msgAndArgs...)
	}
}
