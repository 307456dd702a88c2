package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"initial position", InitialFEN, Ongoing},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Checkmate},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", Checkmate},
		{"back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 0", Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 0", Stalemate},
		{"pawn stalemate", "k7/P7/K7/8/8/8/8/8 b - - 0 0", Stalemate},
		{"check with escape", "4k3/8/8/8/8/8/8/4R2K b - - 0 0", Check},
		{"check answered by capture", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 0", Check},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustImport(t, tt.fen)
			got := Status(board)
			if got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
			testutil.AssertEqual(t, IsCheckmate(board), tt.want == Checkmate)
			testutil.AssertEqual(t, IsStalemate(board), tt.want == Stalemate)
		})
	}
}

func TestStatus_AfterPlay(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "f2f3", "e7e5", "g2g4")
	testutil.AssertEqual(t, Status(board), Ongoing)

	mustPlay(t, board, "d8h4")
	testutil.AssertEqual(t, Status(board), Checkmate)
	testutil.AssertEqual(t, len(LegalMoves(board)), 0)
}

func TestGameStatus_String(t *testing.T) {
	testutil.AssertEqual(t, Ongoing.String(), "ongoing")
	testutil.AssertEqual(t, Check.String(), "check")
	testutil.AssertEqual(t, Checkmate.String(), "checkmate")
	testutil.AssertEqual(t, Stalemate.String(), "stalemate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
	}{
		{"initial position", InitialFEN, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", false},
		{"empty board", "8/8/8/8/8/8/8/8 w - - 0 0", true},
		{"no black king", "8/8/8/8/8/8/8/4K3 w - - 0 0", true},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 0", true},
		{"side to move in check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 0", false},
		{"king en prise to the side to move", "4k3/8/8/8/8/8/p7/4R1K1 w - - 0 0", true},
		{"white king en prise", "4k3/8/8/8/8/8/3q4/4K3 b - - 0 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mustImport(t, tt.fen))
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestValidate_NewBoard(t *testing.T) {
	testutil.AssertError(t, Validate(chess.NewBoard()))
	testutil.AssertNoError(t, Validate(chess.NewInitialBoard()))
}

func TestValidate_RejectsKingCapture(t *testing.T) {
	board := mustImport(t, "4k3/8/8/8/8/8/p7/4R1K1 w - - 0 0")

	err := Validate(board)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), "Black is in check but not to move")
}
