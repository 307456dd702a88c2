package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// MovePiece plays from->to for the side to move. The move must be in the
// legal move set; otherwise a *errors.MoveError wrapping ErrIllegalMove is
// returned and the board is left exactly as it was.
func MovePiece(board *chess.Board, from, to chess.Square) error {
	move := chess.Move{From: from, To: to}

	if !from.Valid() || !to.Valid() {
		return illegal(move, "square off the board")
	}

	piece := board.Get(from)
	switch {
	case !piece.Occupied():
		return illegal(move, "no piece on origin square")
	case piece.Colour() != board.ToMove():
		return illegal(move, "not this side's turn to move")
	case !IsLegal(board, move):
		return illegal(move, "not in legal move set")
	}

	applyMove(board, move)
	return nil
}

// Play parses a long algebraic move such as "e2e4" and applies it with MovePiece.
func Play(board *chess.Board, text string) error {
	move, err := ParseMove(text)
	if err != nil {
		return err
	}
	return MovePiece(board, move.From, move.To)
}

// ParseMove converts long algebraic text ("e2e4", "E2E4") to a move. A
// trailing promotion letter is accepted and ignored since pawns always
// promote to a queen.
func ParseMove(text string) (chess.Move, error) {
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'Q':
			text = text[:4]
		}
	}
	if len(text) != 4 {
		return chess.Move{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Field: "move", Text: text}
	}

	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParseSquare(text[2:])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	return chess.Move{From: from, To: to}, nil
}

// applyMove moves the piece without legality checks and updates the
// en passant target and side to move.
func applyMove(board *chess.Board, move chess.Move) {
	piece := board.Get(move.From)
	colour := piece.Colour()
	isPawn := piece.Kind() == chess.Pawn

	// Handle en passant capture: the passed pawn sits beside the origin.
	if isPawn && move.From.File != move.To.File && !board.Get(move.To).Occupied() {
		if ep, ok := board.EnPassant(); ok && ep == move.To {
			passed := chess.Square{File: move.To.File, Rank: move.From.Rank}
			if board.Get(passed).Is(chess.Pawn, colour.Opposite()) {
				board.Set(passed, chess.NoPiece)
			}
		}
	}

	// Handle promotion
	if isPawn && move.To.Rank == pawnLastRank(colour) {
		piece = chess.MakePiece(chess.Queen, colour)
	}

	board.Set(move.From, chess.NoPiece)
	board.Set(move.To, piece.WithMoved())

	// Set en passant square if double pawn push
	board.ClearEnPassant()
	if isPawn && abs(int(move.To.Rank)-int(move.From.Rank)) == 2 {
		board.SetEnPassant(chess.Square{File: move.From.File, Rank: uint8(int(move.From.Rank) + colour.Forward())})
	}

	board.SetToMove(colour.Opposite())
}

func illegal(move chess.Move, reason string) error {
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		From:   move.From.String(),
		To:     move.To.String(),
		Reason: reason,
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
