package chess

import "github.com/lgbarn/chesscore/internal/errors"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File uint8
	Rank uint8
}

// NewSquare builds a square from zero-based indices without range checks.
func NewSquare(file, rank int) Square {
	return Square{File: uint8(file), Rank: uint8(rank)}
}

// ParseSquare converts two-character algebraic notation ("e2", "E2") to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Field: "square", Text: s}
	}

	file := s[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := s[1]

	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Field: "square", Text: s}
	}
	return Square{File: file - 'a', Rank: rank - '1'}, nil
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.File < BoardSize && s.Rank < BoardSize
}

// Offset returns the square shifted by (df, dr) and whether it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := int(s.File) + df
	r := int(s.Rank) + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return Square{}, false
	}
	return NewSquare(f, r), true
}

// String renders the square in lowercase algebraic notation.
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{'a' + s.File, '1' + s.Rank})
}
