// Package suite loads YAML position suites and checks each entry against the
// engine: a starting FEN, moves to play from it and the expected outcome.
//
// A suite file is a YAML list:
//
//	- name: en passant
//	  fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
//	  moves: [d2d4, a7a6, d4d5, e7e5, d5e6]
//	  expect:
//	    fen: rnbqkbnr/1ppp1ppp/p3P3/8/8/8/PPP1PPPP/RNBQKBNR b - - 0 0
//	    status: ongoing
//	    check: false
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Entry is one position to set up and verify.
type Entry struct {
	Name   string   `yaml:"name,omitempty"`
	FEN    string   `yaml:"fen"`
	Moves  []string `yaml:"moves,omitempty"`
	Expect Expect   `yaml:"expect,omitempty"`
}

// Expect lists the outcomes to verify once the moves have been played.
// Zero-valued fields are not checked.
type Expect struct {
	// FEN is the exported position after the moves.
	FEN string `yaml:"fen,omitempty"`

	// Legal is the set of legal moves in long algebraic form, any order.
	Legal []string `yaml:"legal,omitempty"`

	// Check reports whether the side to move is in check.
	Check *bool `yaml:"check,omitempty"`

	// Status is one of ongoing, check, checkmate, stalemate.
	Status string `yaml:"status,omitempty"`

	// Perft maps a depth to its expected leaf node count.
	Perft map[int]uint64 `yaml:"perft,omitempty"`

	// Illegal expects the last move to be rejected.
	Illegal bool `yaml:"illegal,omitempty"`

	// Invalid expects the FEN to be rejected.
	Invalid bool `yaml:"invalid,omitempty"`
}

// Load reads and parses a suite file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidSuite, "%s: %v", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return entries, nil
}

// Parse decodes a suite document. Every entry must carry a FEN; unnamed
// entries are named by their 1-based position.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidSuite, "%v", err)
	}

	for i := range entries {
		e := &entries[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("#%d", i+1)
		}
		if e.FEN == "" {
			return nil, errors.Wrapf(errors.ErrInvalidSuite, "entry %s: missing fen", e.Name)
		}
		if e.Expect.Illegal && len(e.Moves) == 0 {
			return nil, errors.Wrapf(errors.ErrInvalidSuite, "entry %s: illegal expectation without moves", e.Name)
		}
		for depth := range e.Expect.Perft {
			if depth < 1 {
				return nil, errors.Wrapf(errors.ErrInvalidSuite, "entry %s: perft depth %d", e.Name, depth)
			}
		}
	}
	return entries, nil
}

// Marshal encodes entries back to YAML.
func Marshal(entries []Entry) ([]byte, error) {
	return yaml.Marshal(entries)
}
