package chess

// Board represents the piece placement, side to move and en passant target.
// The zero value is an empty board with White to move.
type Board struct {
	// squares[file][rank]; empty squares hold NoPiece.
	squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	toMove Colour

	// Is en passant capture possible? If so epSquare is the square a pawn
	// may capture onto this turn.
	enPassant bool
	epSquare  Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{toMove: White}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}

	b.toMove = White
	b.enPassant = false
}

// Get returns the piece on sq, NoPiece for empty or off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.File][sq.Rank]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.squares[sq.File][sq.Rank] = piece
	}
}

// ToMove returns the colour whose turn it is.
func (b *Board) ToMove() Colour {
	return b.toMove
}

// SetToMove sets the side to move.
func (b *Board) SetToMove(c Colour) {
	b.toMove = c
}

// EnPassant returns the en passant target square, if any.
func (b *Board) EnPassant() (Square, bool) {
	return b.epSquare, b.enPassant
}

// SetEnPassant records sq as the en passant target.
func (b *Board) SetEnPassant(sq Square) {
	b.enPassant = true
	b.epSquare = sq
}

// ClearEnPassant removes any en passant target.
func (b *Board) ClearEnPassant() {
	b.enPassant = false
	b.epSquare = Square{}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingSquare scans for the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := MakePiece(King, colour)
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank].Unmoved() == king {
				return NewSquare(file, rank), true
			}
		}
	}
	return Square{}, false
}

// Squares returns every square in scan order: rank 1 to 8, file a to h.
func Squares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, NewSquare(file, rank))
		}
	}
	return squares
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			buf = append(buf, b.squares[file][rank].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
