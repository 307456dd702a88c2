// analysis.go - Position analysis with optional perft and caching
package main

import (
	"context"
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/storage"
)

// analysePositions analyses every configured position in order and writes
// the reports. Several positions in JSON form one document with a
// "positions" array. store may be nil.
func analysePositions(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	fens := cfg.FENs
	if len(fens) == 0 {
		fens = []string{engine.InitialFEN}
	}

	w := newAnalysisWriter(cfg, len(fens))
	for i, fen := range fens {
		analysis, err := analysePosition(ctx, cfg, store, fen)
		if err != nil {
			if len(fens) > 1 {
				err = errors.Wrapf(err, "position %d", i+1)
			}
			return err
		}
		if err := w.WriteAnalysis(analysis); err != nil {
			return errors.Wrap(err, "write analysis")
		}
	}
	return w.Close()
}

// newAnalysisWriter picks the writer for count reports.
func newAnalysisWriter(cfg *config.Config, count int) output.AnalysisWriter {
	if cfg.Output.Format == config.JSON && count > 1 {
		return output.NewJSONWriter(cfg.OutputFile)
	}
	return output.NewWriter(cfg.OutputFile, cfg.Output)
}

// analysePosition sets up fen, plays the configured moves and builds the
// report, with a perft count when one is configured.
func analysePosition(ctx context.Context, cfg *config.Config, store *storage.Storage, fen string) (output.Analysis, error) {
	board, err := setupPosition(cfg, fen)
	if err != nil {
		return output.Analysis{}, err
	}

	analysis, err := lookupAnalysis(cfg, store, board)
	if err != nil {
		return output.Analysis{}, err
	}

	if cfg.Perft.Depth > 0 {
		report, err := perftReport(ctx, cfg, store, board, analysis.FEN)
		if err != nil {
			return output.Analysis{}, err
		}
		analysis.Perft = report
	}
	return analysis, nil
}

// setupPosition imports fen and plays each configured move.
func setupPosition(cfg *config.Config, fen string) (*chess.Board, error) {
	board, err := engine.Import(fen)
	if err != nil {
		return nil, err
	}
	if err := engine.Validate(board); err != nil {
		return nil, err
	}
	for i, move := range cfg.Moves {
		if err := engine.Play(board, move); err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "Played %s: %s\n", move, engine.Export(board))
		}
	}
	return board, nil
}

// lookupAnalysis returns the cached analysis of board, computing and
// storing it on a miss.
func lookupAnalysis(cfg *config.Config, store *storage.Storage, board *chess.Board) (output.Analysis, error) {
	if store == nil {
		return output.Analyse(board), nil
	}

	fen := engine.Export(board)
	analysis, found, err := store.Get(fen)
	if err != nil {
		return output.Analysis{}, err
	}
	if found {
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "Cache hit for %s\n", fen)
		}
		// The cached report may carry a perft result from an earlier run.
		analysis.Perft = nil
		return analysis, nil
	}

	analysis = output.Analyse(board)
	if err := store.Put(analysis); err != nil {
		return output.Analysis{}, err
	}
	return analysis, nil
}

// perftReport counts nodes to the configured depth. Plain counts are read
// from and written to the cache; divide reports are always computed.
func perftReport(ctx context.Context, cfg *config.Config, store *storage.Storage, board *chess.Board, fen string) (*output.PerftReport, error) {
	depth := cfg.Perft.Depth

	if cfg.Perft.Divide {
		entries := engine.Divide(board, depth)
		var nodes uint64
		for _, e := range entries {
			nodes += e.Nodes
		}
		return output.NewPerftReport(depth, nodes, entries), nil
	}

	if store != nil {
		nodes, found, err := store.GetPerft(fen, depth)
		if err != nil {
			return nil, err
		}
		if found {
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "Cached perft(%d) for %s\n", depth, fen)
			}
			return output.NewPerftReport(depth, nodes, nil), nil
		}
	}

	var cache engine.PerftCache
	var table *hashing.ThreadSafePerftTable
	if cfg.Perft.HashEntries > 0 {
		table = hashing.NewThreadSafePerftTable(cfg.Perft.HashEntries)
		cache = table
	}
	nodes, err := engine.PerftParallelHashed(ctx, board, depth, cfg.Perft.Workers, cache)
	if err != nil {
		return nil, err
	}
	if table != nil && cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Perft table: %d entries, %d hits\n", table.Len(), table.Hits())
	}
	if store != nil {
		if err := store.PutPerft(fen, depth, nodes); err != nil {
			return nil, err
		}
	}
	return output.NewPerftReport(depth, nodes, nil), nil
}
