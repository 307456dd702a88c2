// Package hashing provides position hashing and a perft transposition table.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Zobrist keys. Pieces are indexed by their packed value with the moved
// flag cleared; squares by file*8+rank.
var (
	pieceKeys     [16][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	r := rand.New(rand.NewPCG(0x9E3779B97F4A7C15, 0xBF58476D1CE4E5B9))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = r.Uint64()
		}
	}
	blackToMove = r.Uint64()
	for f := range enPassantKeys {
		enPassantKeys[f] = r.Uint64()
	}
}

// Signature identifies a position for table lookups.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Weak is an independent checksum guarding against Hash collisions
	Weak uint32
}

// Sign computes the signature of board. Moved flags are ignored since they
// do not change which moves are legal.
func Sign(board *chess.Board) Signature {
	var sig Signature
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Get(chess.NewSquare(file, rank)).Unmoved()
			if !piece.Occupied() {
				continue
			}
			idx := file*chess.BoardSize + rank
			sig.Hash ^= pieceKeys[piece][idx]
			sig.Weak += uint32(piece) * uint32(idx+1) * 2654435761
		}
	}
	if board.ToMove() == chess.Black {
		sig.Hash ^= blackToMove
		sig.Weak ^= 1
	}
	if sq, ok := board.EnPassant(); ok {
		sig.Hash ^= enPassantKeys[sq.File]
		sig.Weak += uint32(sq.File+1) << 24
	}
	return sig
}

// Zobrist returns the Zobrist hash of board.
func Zobrist(board *chess.Board) uint64 {
	return Sign(board).Hash
}

// perftEntry is one stored node count.
type perftEntry struct {
	weak  uint32
	depth int
	nodes uint64
}

// PerftTable memoises perft node counts by position and depth.
// It is not safe for concurrent use; see ThreadSafePerftTable.
type PerftTable struct {
	entries     map[uint64][]perftEntry
	maxCapacity int
	size        int
	hits        int
}

// NewPerftTable creates a table holding at most maxCapacity counts.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[uint64][]perftEntry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position and depth.
func (t *PerftTable) Lookup(sig Signature, depth int) (uint64, bool) {
	for _, e := range t.entries[sig.Hash] {
		if e.weak == sig.Weak && e.depth == depth {
			t.hits++
			return e.nodes, true
		}
	}
	return 0, false
}

// Store records a count. Once the table is full new counts are dropped.
func (t *PerftTable) Store(sig Signature, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	for _, e := range t.entries[sig.Hash] {
		if e.weak == sig.Weak && e.depth == depth {
			return
		}
	}
	t.entries[sig.Hash] = append(t.entries[sig.Hash], perftEntry{weak: sig.Weak, depth: depth, nodes: nodes})
	t.size++
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && t.size >= t.maxCapacity
}

// Len returns the number of stored counts.
func (t *PerftTable) Len() int {
	return t.size
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[uint64][]perftEntry)
	t.size = 0
	t.hits = 0
}
