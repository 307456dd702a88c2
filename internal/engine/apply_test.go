package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestMovePiece_Sequences(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		move    string
		wantErr bool
	}{
		{"first move by white", nil, "b2b3", false},
		{"black cannot move first", nil, "e7e5", true},
		{"black replies", []string{"b2b3"}, "e7e5", false},
		{"white cannot move twice", []string{"d2d4"}, "a2a3", true},
		{"empty origin", nil, "c3c7", true},
		{"pawn cannot move diagonally to an empty square", nil, "e2d3", true},
		{"pawn double push only from start rank", []string{"e2e3", "a7a6"}, "e3e5", true},
		{"pawn cannot capture forward", []string{"d2d4", "d7d5"}, "d4d5", true},
		{"white pawn cannot move backwards", []string{"c2c4", "h7h6"}, "c4c3", true},
		{"black pawn cannot move backwards", []string{"h2h3", "h7h5", "b2b4"}, "h5h6", true},
		{"white pawn captures right", []string{"d2d4", "e7e5"}, "d4e5", false},
		{"white pawn captures left", []string{"h2h4", "g7g5"}, "h4g5", false},
		{"black pawn captures right", []string{"h2h3", "g7g5", "h3h4"}, "g5h4", false},
		{"black pawn captures left", []string{"d2d3", "e7e5", "d3d4"}, "e5d4", false},
		{"edge pawn captures", []string{"b2b4", "a7a5"}, "b4a5", false},
		{"pawn blocked by opponent", []string{"d2d4", "h7h6", "c2c3", "h6h5", "d4d5", "d7d6", "c3c4", "a7a6"}, "d5d6", true},
		{"knight cannot land on own piece", nil, "b1d2", true},
		{"knight cannot move straight", nil, "b1b3", true},
		{"knight cannot stay put", nil, "b1b1", true},
		{"knight cannot move diagonally", nil, "b1d3", true},
		{"knight captures", []string{"b1c3", "d7d5"}, "c3d5", false},
		{"knight recaptures", []string{"d2d4", "b8c6", "g1f3", "c6d4"}, "f3d4", false},
		{"knight tour", []string{"b1c3", "b8c6", "g1f3", "g8f6", "c3e4", "c6e5", "f3d4"}, "f6d5", false},
		{"bishop diagonals", []string{"d2d3", "d7d6", "c1g5", "c8d7", "g5f6"}, "d7a4", false},
		{"bishop blocked by own pawn", nil, "c1e3", true},
		{"rook blocked by own pawn", nil, "a1a3", true},
		{"queen captures along file", []string{"e2e4", "d7d5", "d1h5", "d5e4"}, "h5h7", false},
		{"king steps one square", []string{"e2e4", "e7e5"}, "e1e2", false},
		{"king cannot step two squares", []string{"e2e4", "e7e5", "e1e2", "a7a6"}, "e2e4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewInitialBoard()
			mustPlay(t, board, tt.setup...)

			err := Play(board, tt.move)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestMovePiece_AlternatesTurns(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, board.ToMove(), chess.White)

	mustPlay(t, board, "e2e4")
	testutil.AssertEqual(t, board.ToMove(), chess.Black)

	mustPlay(t, board, "e7e5")
	testutil.AssertEqual(t, board.ToMove(), chess.White)
}

func TestMovePiece_SetsMovedFlag(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "g1f3")

	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "g1")), chess.NoPiece)
	knight := board.Get(testutil.MustSquare(t, "f3"))
	testutil.AssertTrue(t, knight.Is(chess.Knight, chess.White))
	testutil.AssertTrue(t, knight.Moved())
	testutil.AssertFalse(t, board.Get(testutil.MustSquare(t, "b1")).Moved())
}

func TestMovePiece_FailureLeavesBoardUnchanged(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "d2d4")
	before := board.Copy()

	for _, text := range []string{"a2a3", "d7d4", "e5e4", "g8g6", "e8e7"} {
		if err := Play(board, text); err == nil {
			t.Fatalf("Play(%s) succeeded, want error", text)
		}
		testutil.AssertSameBoard(t, board, before)
	}
}

func TestMovePiece_OffBoardSquare(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "d2d3")

	err := MovePiece(board, testutil.MustSquare(t, "b8"), chess.Square{File: 0, Rank: 9})
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
}

func TestMovePiece_ErrorDetails(t *testing.T) {
	board := chess.NewInitialBoard()
	err := MovePiece(board, testutil.MustSquare(t, "e4"), testutil.MustSquare(t, "e5"))

	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error %v is not a *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.From, "e4")
	testutil.AssertEqual(t, moveErr.To, "e5")
	testutil.AssertEqual(t, moveErr.Reason, "no piece on origin square")
	testutil.AssertContains(t, err.Error(), "move e4e5")
}

func TestMovePiece_EnPassantTarget(t *testing.T) {
	board := chess.NewInitialBoard()

	mustPlay(t, board, "d2d4")
	ep, ok := board.EnPassant()
	testutil.AssertTrue(t, ok, "double push sets a target")
	testutil.AssertEqual(t, ep.String(), "d3")

	mustPlay(t, board, "a7a6")
	_, ok = board.EnPassant()
	testutil.AssertFalse(t, ok, "single push clears the target")

	mustPlay(t, board, "h2h3", "c7c5")
	ep, _ = board.EnPassant()
	testutil.AssertEqual(t, ep.String(), "c6", "black double push")
}

func TestMovePiece_EnPassantCapture(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "d2d4", "a7a6", "d4d5", "e7e5")

	mustPlay(t, board, "d5e6")

	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e5")), chess.NoPiece, "passed pawn removed")
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "d5")), chess.NoPiece)
	testutil.AssertTrue(t, board.Get(testutil.MustSquare(t, "e6")).Is(chess.Pawn, chess.White))
	_, ok := board.EnPassant()
	testutil.AssertFalse(t, ok)
}

func TestMovePiece_EnPassantExpires(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "d2d4", "a7a6", "d4d5", "e7e5", "g1f3", "a6a5")

	err := Play(board, "d5e6")
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertTrue(t, board.Get(testutil.MustSquare(t, "e5")).Is(chess.Pawn, chess.Black))
}

func TestMovePiece_PromotesToQueen(t *testing.T) {
	board := mustImport(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 0")
	mustPlay(t, board, "a7a8")

	got := board.Get(testutil.MustSquare(t, "a8"))
	testutil.AssertTrue(t, got.Is(chess.Queen, chess.White))
	testutil.AssertTrue(t, got.Moved())
	testutil.AssertTrue(t, InCheck(board, chess.Black), "new queen checks along rank 8")
}

func TestMovePiece_BlackPromotes(t *testing.T) {
	board := mustImport(t, "4k3/8/8/8/8/8/7p/K7 b - - 0 0")
	mustPlay(t, board, "h2h1q")

	testutil.AssertTrue(t, board.Get(testutil.MustSquare(t, "h1")).Is(chess.Queen, chess.Black))
	testutil.AssertTrue(t, InCheck(board, chess.White))
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text    string
		want    string
		wantErr bool
	}{
		{"e2e4", "e2e4", false},
		{"E2E4", "e2e4", false},
		{"a7a8q", "a7a8", false},
		{"a7a8Q", "a7a8", false},
		{"a7a8n", "", true},
		{"e2", "", true},
		{"e2e", "", true},
		{"", "", true},
		{"i2i4", "", true},
		{"e0e4", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidNotation)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.String(), tt.want)
		})
	}
}
