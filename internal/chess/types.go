// Package chess provides core chess types: squares, pieces, moves and the board.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type. None marks an empty square.
type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a packed square occupant: kind in bits 0-2, colour in bit 3 and
// the moved flag in bit 4. The zero value is NoPiece.
type Piece uint8

const (
	kindMask   Piece = 0x07
	colourBit  Piece = 0x08
	movedBit   Piece = 0x10
	colourShift      = 3
)

// NoPiece is the occupant of an empty square.
const NoPiece Piece = 0

// MakePiece creates an unmoved piece of the given kind and colour.
// MakePiece(None, c) is NoPiece for either colour.
func MakePiece(kind Kind, colour Colour) Piece {
	if kind == None {
		return NoPiece
	}
	return Piece(kind)&kindMask | Piece(colour)<<colourShift
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(kind, Black)
}

// Occupied reports whether the piece is anything other than NoPiece.
func (p Piece) Occupied() bool {
	return p.Kind() != None
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p & kindMask)
}

// Colour extracts the piece colour. Meaningless for NoPiece.
func (p Piece) Colour() Colour {
	return Colour((p & colourBit) >> colourShift)
}

// Moved reports whether the piece has left its original square.
func (p Piece) Moved() bool {
	return p&movedBit != 0
}

// WithMoved returns the piece with its moved flag set.
func (p Piece) WithMoved() Piece {
	if !p.Occupied() {
		return NoPiece
	}
	return p | movedBit
}

// Unmoved returns the piece with its moved flag cleared.
func (p Piece) Unmoved() Piece {
	return p &^ movedBit
}

// Is reports whether p is a piece of the given kind and colour, ignoring
// the moved flag.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Unmoved() == MakePiece(kind, colour)
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if !p.Occupied() {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if !p.Occupied() {
		return "None"
	}
	return fmt.Sprintf("%s %s", p.Colour(), p.Kind())
}

// ParsePieceLetter converts a FEN letter (PNBRQK, upper = White) to a piece.
func ParsePieceLetter(c byte) (Piece, error) {
	colour := White
	upper := c
	if c >= 'a' && c <= 'z' {
		colour = Black
		upper = c - ('a' - 'A')
	}

	var kind Kind
	switch upper {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return NoPiece, &errors.NotationError{
			Err:   errors.ErrInvalidPieceLetter,
			Field: "piece",
			Text:  string(c),
		}
	}
	return MakePiece(kind, colour), nil
}
