// Package engine provides move generation, check detection, move
// application and FEN conversion for chess boards.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names, in order, as reported by NotationError.Field.
var fenFields = []string{
	"piece placement",
	"side to move",
	"castling ability",
	"en passant target square",
	"halfmove clock",
	"fullmove counter",
}

// Import creates a board from a FEN string. All six fields must be present.
// Castling rights and the clocks are syntax-checked but not stored.
func Import(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < len(fenFields) {
		return nil, &errors.NotationError{Err: errors.ErrFieldMissing, Field: fenFields[len(parts)]}
	}
	if len(parts) > len(fenFields) {
		return nil, &errors.NotationError{Err: errors.ErrInvalidFEN, Field: "trailing field", Text: parts[len(fenFields)]}
	}

	board := chess.NewBoard()

	if err := parsePiecePlacement(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}

	if err := checkCastlingRights(parts[2]); err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}

	if err := checkClock(fenFields[4], parts[4]); err != nil {
		return nil, err
	}
	if err := checkClock(fenFields[5], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePlacement parses the piece placement field, rank 8 first.
func parsePiecePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.NotationError{Err: errors.ErrRankCount, Field: fenFields[0], Text: placement}
	}

	for i, rankText := range ranks {
		if err := parseRank(board, chess.BoardSize-1-i, rankText); err != nil {
			return err
		}
	}
	return nil
}

// parseRank fills one rank: digits skip empty files, letters place pieces.
func parseRank(board *chess.Board, rank int, rankText string) error {
	file := 0
	for i := 0; i < len(rankText); i++ {
		c := rankText[i]
		if c >= '1' && c <= '8' {
			file += int(c - '0')
			if file > chess.BoardSize {
				return &errors.NotationError{Err: errors.ErrRankOverflow, Field: fenFields[0], Text: rankText}
			}
			continue
		}

		piece, err := chess.ParsePieceLetter(c)
		if err != nil {
			return &errors.NotationError{Err: errors.ErrInvalidPieceLetter, Field: fenFields[0], Text: string(c)}
		}
		if file >= chess.BoardSize {
			return &errors.NotationError{Err: errors.ErrRankOverflow, Field: fenFields[0], Text: rankText}
		}
		board.Set(chess.NewSquare(file, rank), piece)
		file++
	}

	if file < chess.BoardSize {
		return &errors.NotationError{Err: errors.ErrRankIncomplete, Field: fenFields[0], Text: rankText}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.SetToMove(chess.White)
	case "b":
		board.SetToMove(chess.Black)
	default:
		return &errors.NotationError{Err: errors.ErrInvalidSideToMove, Field: fenFields[1], Text: field}
	}
	return nil
}

// checkCastlingRights accepts "-" or any of KQkq and Shredder-style file letters.
func checkCastlingRights(field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch c := field[i]; {
		case strings.IndexByte("KQkq", c) >= 0:
		case c >= 'A' && c <= 'H', c >= 'a' && c <= 'h':
		default:
			return &errors.NotationError{Err: errors.ErrInvalidFEN, Field: fenFields[2], Text: field}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The target
// lies behind a pawn that just made a two-step push, so it is on the sixth
// rank when White is to move and the third when Black is.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return &errors.NotationError{Err: errors.ErrInvalidNotation, Field: fenFields[3], Text: field}
	}
	if sq.Rank != enPassantRank(board.ToMove()) {
		return &errors.NotationError{Err: errors.ErrInvalidFEN, Field: fenFields[3], Text: field}
	}
	board.SetEnPassant(sq)
	return nil
}

// enPassantRank is the rank of a valid en passant target for the side to move.
func enPassantRank(toMove chess.Colour) uint8 {
	if toMove == chess.White {
		return 5
	}
	return 2
}

// checkClock requires a non-negative integer.
func checkClock(name, field string) error {
	if n, err := strconv.Atoi(field); err != nil || n < 0 {
		return &errors.NotationError{Err: errors.ErrInvalidFEN, Field: name, Text: field}
	}
	return nil
}

// Export converts a board to a FEN string. Castling rights and clocks are
// not tracked, so they are written as "-" and "0 0".
func Export(board *chess.Board) string {
	var sb strings.Builder

	writePiecePlacement(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteString(" - ")
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 0")

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if !piece.Occupied() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := board.EnPassant(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
