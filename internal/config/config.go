// Package config provides configuration for chesscore.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
// Settings are grouped into logical sub-configurations:
//   - Output: rendering format and line wrapping
//   - Perft: node counting depth and parallelism
//   - Suite: position suite file and run policy
type Config struct {
	// Verbosity controls diagnostics written to LogFile:
	// 0=nothing, 1=summaries, 2=running commentary
	Verbosity int

	// Sub-configurations
	Output *OutputConfig
	Perft  *PerftConfig
	Suite  *SuiteConfig

	// Starting positions, each analysed after playing Moves from it
	FENs  []string
	Moves []string

	// DBPath is the directory of the analysis cache; empty disables it
	DBPath string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Suite:      NewSuiteConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
