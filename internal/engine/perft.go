package engine

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// PerftCache memoises subtree counts. Implementations used by PerftParallel
// must be safe for concurrent use.
type PerftCache interface {
	Lookup(sig hashing.Signature, depth int) (uint64, bool)
	Store(sig hashing.Signature, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := board.Copy()
		applyMove(next, move)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftHashed is Perft with subtree counts of depth 2 and more read from
// and written to cache. A nil cache gives plain Perft.
func PerftHashed(board *chess.Board, depth int, cache PerftCache) uint64 {
	if cache == nil || depth < 2 {
		return Perft(board, depth)
	}

	sig := hashing.Sign(board)
	if nodes, ok := cache.Lookup(sig, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, move := range LegalMoves(board) {
		next := board.Copy()
		applyMove(next, move)
		nodes += PerftHashed(next, depth-1, cache)
	}
	cache.Store(sig, depth, nodes)
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, in generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}

	moves := LegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		next := board.Copy()
		applyMove(next, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(next, depth-1)})
	}
	return entries
}

// perftContext is PerftHashed that gives up with the context's error once
// ctx is cancelled. The context is checked at every interior node of depth
// 3 or more, leaving the two plies nearest the leaves unchecked.
func perftContext(ctx context.Context, board *chess.Board, depth int, cache PerftCache) (uint64, error) {
	if depth < 3 {
		return PerftHashed(board, depth, cache), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var sig hashing.Signature
	if cache != nil {
		sig = hashing.Sign(board)
		if nodes, ok := cache.Lookup(sig, depth); ok {
			return nodes, nil
		}
	}

	var nodes uint64
	for _, move := range LegalMoves(board) {
		next := board.Copy()
		applyMove(next, move)
		n, err := perftContext(ctx, next, depth-1, cache)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	if cache != nil {
		cache.Store(sig, depth, nodes)
	}
	return nodes, nil
}

// PerftParallel computes Perft by splitting the root moves across at most
// workers goroutines, each on its own copy of the board. workers below 1
// means one per CPU. Cancelling ctx stops the count within a few plies of
// the leaves and returns the context's error.
func PerftParallel(ctx context.Context, board *chess.Board, depth, workers int) (uint64, error) {
	return PerftParallelHashed(ctx, board, depth, workers, nil)
}

// PerftParallelHashed is PerftParallel with the workers sharing cache.
func PerftParallelHashed(ctx context.Context, board *chess.Board, depth, workers int, cache PerftCache) (uint64, error) {
	if depth <= 1 {
		return Perft(board, depth), nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	var nodes atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, move := range LegalMoves(board) {
		next := board.Copy()
		applyMove(next, move)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := perftContext(ctx, next, depth-1, cache)
			if err != nil {
				return err
			}
			nodes.Add(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
