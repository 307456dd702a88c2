// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

// stringList is a flag that may be given several times.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// fenFlags holds every -fen value in command-line order.
var fenFlags stringList

func init() {
	flag.Var(&fenFlags, "fen", "Starting position in FEN; repeat to analyse several (default: initial position)")
}

var (
	// Position options
	movesFlag = flag.String("moves", "", "Moves to play from each position (e.g. 'e2e4,e7e5' or 'e2e4 e7e5')")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "Split the perft count by root move")
	workers    = flag.Int("workers", 0, "Parallel workers for perft and suites (0 = one per CPU)")
	hashSize   = flag.Int("hash", config.DefaultHashEntries, "Perft transposition table entries (0 = disabled)")

	// Suite options
	suiteFile = flag.String("suite", "", "YAML position suite to check")
	failFast  = flag.Bool("failfast", false, "Stop the suite at the first failing entry")

	// Cache
	dbPath = flag.String("db", "", "Directory of the analysis cache (default: no cache)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length of the legal move list")
	noBoard    = flag.Bool("noboard", false, "Don't print the board diagram")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summaries, 2=commentary")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Suite.Path = *suiteFile
	cfg.Suite.FailFast = *failFast
	cfg.DBPath = *dbPath
	cfg.Verbosity = *verbosity
}

// applyPositionFlags sets the starting positions and the moves to play.
func applyPositionFlags(cfg *config.Config) {
	cfg.FENs = nil
	for _, fen := range fenFlags {
		cfg.FENs = append(cfg.FENs, strings.TrimSpace(fen))
	}
	if len(cfg.FENs) == 0 {
		cfg.FENs = []string{engine.InitialFEN}
	}
	cfg.Moves = splitMoves(*movesFlag)
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.HashEntries = *hashSize
}

// applyOutputFlags configures rendering.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.ShowBoard = !*noBoard
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
