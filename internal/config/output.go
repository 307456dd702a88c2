package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// OutputFormat selects how analysed positions are rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable report
	JSON                     // One JSON document
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the rendering (Text or JSON)
	Format OutputFormat

	// MaxLineLength wraps the legal move list in text output
	MaxLineLength uint

	// ShowBoard prints the board diagram in text output
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		MaxLineLength: 80,
		ShowBoard:     true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength > 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("line length %d is below 10: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
