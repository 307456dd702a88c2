package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestPseudoLegalMoves_KnightGeometry(t *testing.T) {
	for _, from := range chess.Squares() {
		board := chess.NewBoard()
		board.Set(from, chess.W(chess.Knight))

		var want []string
		for _, offset := range knightOffsets {
			if to, ok := from.Offset(offset[0], offset[1]); ok {
				want = append(want, to.String())
			}
		}

		got := testutil.Destinations(PseudoLegalMoves(board))
		testutil.AssertEqual(t, got, testutil.Destinations(movesTo(from, want)), "knight on %v", from)
	}
}

// movesTo builds moves from one square to each destination in notation.
func movesTo(from chess.Square, dests []string) []chess.Move {
	moves := make([]chess.Move, 0, len(dests))
	for _, d := range dests {
		to, _ := chess.ParseSquare(d)
		moves = append(moves, chess.Move{From: from, To: to})
	}
	return moves
}

func TestLegalMovesFrom_Pieces(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "knight in the centre",
			fen:  "7k/8/8/8/3N4/8/8/K7 w - - 0 0",
			from: "d4",
			want: []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name: "knight cannot land on own pieces",
			fen:  InitialFEN,
			from: "b1",
			want: []string{"a3", "c3"},
		},
		{
			name: "king on an open board",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 0",
			from: "e1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
		{
			name: "rook stops at own piece and captures enemy",
			fen:  "4k3/8/8/8/8/P7/8/R2n3K w - - 0 0",
			from: "a1",
			want: []string{"a2", "b1", "c1", "d1"},
		},
		{
			name: "bishop rays to the edges",
			fen:  "4k3/8/8/8/3B4/8/8/4K3 w - - 0 0",
			from: "d4",
			want: []string{"a1", "a7", "b2", "b6", "c3", "c5", "e3", "e5", "f2", "f6", "g1", "g7", "h8"},
		},
		{
			name: "queen combines both",
			fen:  "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 0",
			from: "d4",
			want: []string{
				"a1", "a4", "a7", "b2", "b4", "b6", "c3", "c4", "c5",
				"d1", "d2", "d3", "d5", "d6", "d7", "d8",
				"e3", "e4", "e5", "f2", "f4", "f6", "g1", "g4", "g7", "h4", "h8",
			},
		},
		{
			name: "white pawn single and double push",
			fen:  InitialFEN,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "black pawn single and double push",
			fen:  "rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR b - - 0 0",
			from: "e7",
			want: []string{"e5", "e6"},
		},
		{
			name: "double push blocked on the far square",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 0",
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "push blocked on the near square",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 0",
			from: "e2",
			want: nil,
		},
		{
			name: "pawn off its start rank moves one step",
			fen:  "4k3/8/8/8/8/4P3/8/4K3 w - - 0 0",
			from: "e3",
			want: []string{"e4"},
		},
		{
			name: "pawn captures diagonally only onto enemies",
			fen:  "4k3/8/8/3p1N2/4P3/8/8/4K3 w - - 0 0",
			from: "e4",
			want: []string{"d5", "e5"},
		},
		{
			name: "en passant target is a capture destination",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 0",
			from: "e5",
			want: []string{"d6", "e6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustImport(t, tt.fen)
			got := destinationsFrom(t, board, tt.from)
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestLegalMovesFrom_WrongSide(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, len(LegalMovesFrom(board, testutil.MustSquare(t, "e7"))), 0, "black pawn on white's turn")
	testutil.AssertEqual(t, len(LegalMovesFrom(board, testutil.MustSquare(t, "e4"))), 0, "empty square")
}

func TestLegalMoves_InitialPosition(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := LegalMoves(board)

	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertEqual(t, testutil.MoveStrings(moves), []string{
		"a2a3", "a2a4", "b1a3", "b1c3", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g1f3", "g1h3", "g2g3", "g2g4", "h2h3", "h2h4",
	})
}

func TestPseudoLegalMovesFor_IgnoresEnPassantForOtherSide(t *testing.T) {
	// d6 is White's en passant target; Black's pawn on c7 must not see it.
	board := mustImport(t, "4k3/2p5/8/3pP3/8/8/8/4K3 w - d6 0 0")
	for _, m := range PseudoLegalMovesFor(board, chess.Black) {
		if m.To.String() == "d6" && m.From.String() == "c7" {
			t.Errorf("black pawn c7 should not capture onto d6")
		}
	}
}
