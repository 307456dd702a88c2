// chesscore analyses chess positions: legal moves, check and game status,
// perft node counts, and YAML position suites.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to suite checking or position analysis.
func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Suite.Path != "" {
		return runSuite(ctx, cfg)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}
	return analysePositions(ctx, cfg, store)
}

// openStore opens the analysis cache when one is configured.
func openStore(cfg *config.Config) (*storage.Storage, error) {
	if cfg.DBPath == "" {
		return nil, nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Using analysis cache %s\n", cfg.DBPath)
	}
	return store, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyse a chess position or check a YAML position suite.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesscore -moves e2e4,e7e5\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen '8/8/8/8/8/8/8/K6k w - - 0 1' -perft 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen '4k3/8/8/8/8/8/8/4K3 w - - 0 1' -fen '4k3/8/8/8/8/8/8/4K3 b - - 0 1' -J\n")
	fmt.Fprintf(os.Stderr, "  chesscore -suite positions.yaml -J\n")
}
