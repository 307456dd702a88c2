package engine

import "github.com/lgbarn/chesscore/internal/chess"

// PseudoLegalMoves returns the moves for the side to move that obey piece
// geometry and occupancy but may leave the mover's king attacked.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	return PseudoLegalMovesFor(board, board.ToMove())
}

// PseudoLegalMovesFor returns the pseudo-legal moves of the given colour.
// The en passant target only applies when colour is the side to move.
func PseudoLegalMovesFor(board *chess.Board, colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for _, from := range chess.Squares() {
		piece := board.Get(from)
		if !piece.Occupied() || piece.Colour() != colour {
			continue
		}
		moves = appendPieceMoves(moves, board, from, piece)
	}
	return moves
}

// appendPieceMoves dispatches on the piece kind on from.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece) []chess.Move {
	switch piece.Kind() {
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, piece.Colour())
	case chess.Knight:
		return appendStepMoves(moves, board, from, piece.Colour(), knightOffsets)
	case chess.King:
		return appendStepMoves(moves, board, from, piece.Colour(), kingOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return appendSlidingMoves(moves, board, from, piece.Colour(), slidingDirs(piece.Kind()))
	}
	return moves
}

// appendStepMoves handles knights and kings: one hop per offset, onto an
// empty or opposing square.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets []direction) []chess.Move {
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		target := board.Get(to)
		if target.Occupied() && target.Colour() == colour {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to})
	}
	return moves
}

// appendSlidingMoves walks every direction until blocked; the blocker is a
// destination only when it is an opposing piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction) []chess.Move {
	for _, dir := range dirs {
		blocker, hit := castRay(board, from, dir, func(to chess.Square) {
			moves = append(moves, chess.Move{From: from, To: to})
		})
		if hit && board.Get(blocker).Colour() != colour {
			moves = append(moves, chess.Move{From: from, To: blocker})
		}
	}
	return moves
}

// pawnStartRank returns the rank index pawns of colour begin on.
func pawnStartRank(colour chess.Colour) uint8 {
	if colour == chess.White {
		return 1
	}
	return 6
}

// pawnLastRank returns the rank index on which pawns of colour promote.
func pawnLastRank(colour chess.Colour) uint8 {
	if colour == chess.White {
		return 7
	}
	return 0
}

// appendPawnMoves generates pushes, double pushes, captures and en passant.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.Forward()

	// Forward move
	if one, ok := from.Offset(0, dir); ok && !board.Get(one).Occupied() {
		moves = append(moves, chess.Move{From: from, To: one})

		// Double push from starting rank
		if from.Rank == pawnStartRank(colour) {
			if two, ok := from.Offset(0, 2*dir); ok && !board.Get(two).Occupied() {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Captures
	ep, hasEP := board.EnPassant()
	hasEP = hasEP && colour == board.ToMove()
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target := board.Get(to)
		switch {
		case target.Occupied() && target.Colour() != colour:
			moves = append(moves, chess.Move{From: from, To: to})
		case hasEP && to == ep && !target.Occupied():
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}
