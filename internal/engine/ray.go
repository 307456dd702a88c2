package engine

import "github.com/lgbarn/chesscore/internal/chess"

// direction is a (file, rank) step.
type direction [2]int

var (
	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([]direction{}, diagonalDirs...), straightDirs...)
)

// castRay walks from sq one step at a time along dir. Every empty square is
// passed to visit (which may be nil). The walk stops at the board edge or at
// the first occupied square, which is returned with ok set.
func castRay(board *chess.Board, from chess.Square, dir direction, visit func(chess.Square)) (blocker chess.Square, ok bool) {
	sq, onBoard := from.Offset(dir[0], dir[1])
	for onBoard {
		if board.Get(sq).Occupied() {
			return sq, true
		}
		if visit != nil {
			visit(sq)
		}
		sq, onBoard = sq.Offset(dir[0], dir[1])
	}
	return chess.Square{}, false
}

// slidingDirs returns the ray directions for a sliding piece kind.
func slidingDirs(kind chess.Kind) []direction {
	switch kind {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return straightDirs
	case chess.Queen:
		return allDirs
	}
	return nil
}
