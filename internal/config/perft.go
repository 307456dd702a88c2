package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// MaxPerftDepth bounds perft requests from the command line.
const MaxPerftDepth = 10

// DefaultHashEntries is the default size of the perft transposition table.
const DefaultHashEntries = 1 << 18

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers bounds parallel goroutines; 0 means one per CPU
	Workers int

	// HashEntries sizes the transposition table shared by perft workers;
	// 0 disables it
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
// Perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{HashEntries: DefaultHashEntries}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("negative hash table size %d: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// SuiteConfig holds settings for running position suites.
type SuiteConfig struct {
	// Path of the YAML suite; empty means no suite run
	Path string

	// FailFast stops at the first failing entry
	FailFast bool
}

// NewSuiteConfig creates a SuiteConfig with default values.
func NewSuiteConfig() *SuiteConfig {
	return &SuiteConfig{}
}
