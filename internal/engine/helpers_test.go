package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

// mustImport parses fen or aborts the test.
func mustImport(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := Import(fen)
	if err != nil {
		t.Fatalf("Import(%q) error: %v", fen, err)
	}
	return board
}

// mustPlay applies long algebraic moves in order, aborting on the first failure.
func mustPlay(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := Play(board, m); err != nil {
			t.Fatalf("Play(%s) error: %v", m, err)
		}
	}
}

// destinationsFrom returns the sorted legal destinations of the piece on from.
func destinationsFrom(t *testing.T, board *chess.Board, from string) []string {
	t.Helper()
	return testutil.Destinations(LegalMovesFrom(board, testutil.MustSquare(t, from)))
}
