package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
)

// InCheck returns true if the given colour's king is attacked.
// It panics if the board has no king of that colour: such a board is not a
// chess position and no caller can recover from it.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from the rank behind them relative to their advance.
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, -byColour.Forward()); ok && board.Get(from).Is(chess.Pawn, byColour) {
			return true
		}
	}

	if attackedByStep(board, sq, byColour, chess.Knight, knightOffsets) {
		return true
	}

	if attackedByStep(board, sq, byColour, chess.King, kingOffsets) {
		return true
	}

	// Sliding pieces along diagonals and straight lines
	if attackedBySlider(board, sq, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return attackedBySlider(board, sq, byColour, straightDirs, chess.Rook)
}

// attackedByStep reports whether a piece of kind stands one offset away.
func attackedByStep(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.Kind, offsets []direction) bool {
	for _, offset := range offsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.Get(from).Is(kind, byColour) {
			return true
		}
	}
	return false
}

// attackedBySlider reports whether the first piece along any of dirs is an
// opposing queen or the given slider kind.
func attackedBySlider(board *chess.Board, sq chess.Square, byColour chess.Colour, dirs []direction, kind chess.Kind) bool {
	for _, dir := range dirs {
		blocker, hit := castRay(board, sq, dir, nil)
		if !hit {
			continue
		}
		piece := board.Get(blocker)
		if piece.Is(kind, byColour) || piece.Is(chess.Queen, byColour) {
			return true
		}
	}
	return false
}
