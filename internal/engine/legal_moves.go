package engine

import "github.com/lgbarn/chesscore/internal/chess"

// LegalMoves returns every legal move for the side to move.
func LegalMoves(board *chess.Board) []chess.Move {
	return LegalMovesFor(board, board.ToMove())
}

// LegalMovesFor returns the pseudo-legal moves of colour that do not leave
// its own king attacked.
func LegalMovesFor(board *chess.Board, colour chess.Colour) []chess.Move {
	pseudo := PseudoLegalMovesFor(board, colour)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if tryMove(board, move, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from, e.g. for
// highlighting destinations. It is empty unless the piece belongs to the
// side to move.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if !piece.Occupied() || piece.Colour() != board.ToMove() {
		return nil
	}

	var legal []chess.Move
	for _, move := range appendPieceMoves(nil, board, from, piece) {
		if tryMove(board, move, piece.Colour()) {
			legal = append(legal, move)
		}
	}
	return legal
}

// IsLegal reports whether move is in the legal move set of the side to move.
func IsLegal(board *chess.Board, move chess.Move) bool {
	for _, legal := range LegalMovesFrom(board, move.From) {
		if legal == move {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, move := range PseudoLegalMovesFor(board, colour) {
		if tryMove(board, move, colour) {
			return true
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in
// check. The caller's board is never touched, so a panic during detection
// cannot leave it half-moved.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	testBoard := board.Copy()
	applyMove(testBoard, move)
	return !InCheck(testBoard, colour)
}
