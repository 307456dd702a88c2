package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	// Create two identical boards and verify they produce the same hash
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	testutil.AssertEqual(t, Sign(board1), Sign(board2))
	testutil.AssertEqual(t, Zobrist(board1), Zobrist(board2))
}

func TestZobristHashDifferentPositions(t *testing.T) {
	e2 := testutil.MustSquare(t, "e2")
	e4 := testutil.MustSquare(t, "e4")

	initial := chess.NewInitialBoard()

	pushed := chess.NewInitialBoard()
	pushed.Set(e2, chess.NoPiece)
	pushed.Set(e4, chess.W(chess.Pawn))

	blackToMove := chess.NewInitialBoard()
	blackToMove.SetToMove(chess.Black)

	withEnPassant := pushed.Copy()
	withEnPassant.SetEnPassant(testutil.MustSquare(t, "e3"))

	boards := map[string]*chess.Board{
		"initial":        initial,
		"pawn pushed":    pushed,
		"black to move":  blackToMove,
		"en passant set": withEnPassant,
	}
	seen := make(map[uint64]string)
	for name, b := range boards {
		h := Zobrist(b)
		if other, ok := seen[h]; ok {
			t.Errorf("%s and %s produced the same hash %x", name, other, h)
		}
		seen[h] = name
	}
}

func TestSign_IgnoresMovedFlag(t *testing.T) {
	e1 := testutil.MustSquare(t, "e1")

	board := chess.NewInitialBoard()
	moved := board.Copy()
	moved.Set(e1, board.Get(e1).WithMoved())

	testutil.AssertEqual(t, Sign(moved), Sign(board))
}

func TestSign_EmptyBoard(t *testing.T) {
	testutil.AssertEqual(t, Sign(chess.NewBoard()), Signature{})
}

func TestPerftTable(t *testing.T) {
	sig := Sign(chess.NewInitialBoard())
	table := NewPerftTable(0)

	_, found := table.Lookup(sig, 3)
	testutil.AssertFalse(t, found, "empty table")

	table.Store(sig, 3, 8902)
	table.Store(sig, 2, 400)
	table.Store(sig, 3, 1) // already stored; ignored

	nodes, found := table.Lookup(sig, 3)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, nodes, uint64(8902))

	nodes, found = table.Lookup(sig, 2)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, nodes, uint64(400))

	testutil.AssertEqual(t, table.Len(), 2)
	testutil.AssertEqual(t, table.Hits(), 2)

	table.Reset()
	testutil.AssertEqual(t, table.Len(), 0)
	testutil.AssertEqual(t, table.Hits(), 0)
	_, found = table.Lookup(sig, 3)
	testutil.AssertFalse(t, found, "after reset")
}

func TestPerftTable_WeakMismatch(t *testing.T) {
	sig := Sign(chess.NewInitialBoard())
	table := NewPerftTable(0)
	table.Store(sig, 2, 400)

	collided := Signature{Hash: sig.Hash, Weak: sig.Weak + 1}
	_, found := table.Lookup(collided, 2)
	testutil.AssertFalse(t, found, "same hash, different checksum")
}

func TestPerftTable_Capacity(t *testing.T) {
	table := NewPerftTable(2)

	table.Store(Signature{Hash: 1}, 1, 10)
	testutil.AssertFalse(t, table.IsFull())
	table.Store(Signature{Hash: 2}, 1, 20)
	testutil.AssertTrue(t, table.IsFull())
	table.Store(Signature{Hash: 3}, 1, 30)

	testutil.AssertEqual(t, table.Len(), 2)
	_, found := table.Lookup(Signature{Hash: 3}, 1)
	testutil.AssertFalse(t, found, "dropped when full")
}
