// suite.go - Parallel checking of YAML position suites
package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/suite"
	"github.com/lgbarn/chesscore/internal/worker"
)

// runSuite checks every entry of the configured suite and writes a report.
// It returns an error wrapping ErrExpectationFailed when any entry fails.
func runSuite(ctx context.Context, cfg *config.Config) error {
	entries, err := suite.Load(cfg.Suite.Path)
	if err != nil {
		return err
	}

	numWorkers := cfg.Perft.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Checking %d entries from %s on %d workers\n", len(entries), cfg.Suite.Path, numWorkers)
	}

	// Entries already run in parallel; each perft stays on one goroutine.
	runner := &suite.Runner{PerftWorkers: 1}
	processed := worker.RunAll(ctx, entries, numWorkers, cfg.Suite.FailFast, worker.RunnerFunc(runner))

	results := make([]suite.Result, len(processed))
	failed := 0
	for i, p := range processed {
		results[i] = p.Result
		if !p.Result.Passed() {
			failed++
		}
	}

	if cfg.Output.Format == config.JSON {
		err = output.WriteSuiteJSON(cfg.OutputFile, results)
	} else {
		err = output.WriteSuiteText(cfg.OutputFile, results)
	}
	if err != nil {
		return errors.Wrap(err, "write suite report")
	}

	if cfg.Verbosity > 0 && len(results) < len(entries) {
		fmt.Fprintf(cfg.LogFile, "Stopped after %d of %d entries\n", len(results), len(entries))
	}
	if failed > 0 {
		return errors.Wrapf(errors.ErrExpectationFailed, "%d of %d entries failed", failed, len(results))
	}
	return nil
}
