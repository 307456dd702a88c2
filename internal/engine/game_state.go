package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// GameStatus summarises the position from the side to move's perspective.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status reports check, checkmate or stalemate for the side to move.
func Status(board *chess.Board) GameStatus {
	colour := board.ToMove()
	inCheck := InCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	}
	return Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove()
	return InCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove()
	return !InCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Validate checks that the board has exactly one king per side and that
// the side not to move is not in check. Together these guarantee that no
// legal move captures a king, the precondition for check detection and
// move generation.
func Validate(board *chess.Board) error {
	var kings [2]int
	for _, sq := range chess.Squares() {
		if piece := board.Get(sq); piece.Kind() == chess.King {
			kings[piece.Colour()]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return errors.Wrap(errors.ErrInvalidFEN, fmt.Sprintf("%s has %d kings", colour, kings[colour]))
		}
	}
	if waiting := board.ToMove().Opposite(); InCheck(board, waiting) {
		return errors.Wrap(errors.ErrInvalidFEN, fmt.Sprintf("%s is in check but not to move", waiting))
	}
	return nil
}
