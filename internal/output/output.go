// Package output renders analysed positions and suite results as text or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Analysis is everything reported about one position. It is also the
// value stored in the analysis cache, hence the JSON tags.
type Analysis struct {
	FEN    string       `json:"fen"`
	ToMove string       `json:"toMove"`
	Board  string       `json:"board,omitempty"`
	Legal  []string     `json:"legalMoves"`
	Check  bool         `json:"check"`
	Status string       `json:"status"`
	Perft  *PerftReport `json:"perft,omitempty"`
}

// PerftReport holds a node count and, optionally, its split by root move.
type PerftReport struct {
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []DivideLine `json:"divide,omitempty"`
}

// DivideLine is the node count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Analyse collects the position report for board, legal moves sorted.
// The board must hold exactly one king per side.
func Analyse(board *chess.Board) Analysis {
	moves := engine.LegalMoves(board)
	legal := make([]string, len(moves))
	for i, m := range moves {
		legal[i] = m.String()
	}
	sort.Strings(legal)

	return Analysis{
		FEN:    engine.Export(board),
		ToMove: board.ToMove().String(),
		Board:  board.String(),
		Legal:  legal,
		Check:  engine.InCheck(board, board.ToMove()),
		Status: engine.Status(board).String(),
	}
}

// NewPerftReport converts a count and divide entries to a report.
func NewPerftReport(depth int, nodes uint64, entries []engine.DivideEntry) *PerftReport {
	report := &PerftReport{Depth: depth, Nodes: nodes}
	for _, e := range entries {
		report.Divide = append(report.Divide, DivideLine{Move: e.Move.String(), Nodes: e.Nodes})
	}
	return report
}

// WriteText writes a human-readable report of the analysis.
func WriteText(w io.Writer, a Analysis, cfg *config.OutputConfig) error {
	ow := &errWriter{w: w}

	if cfg.ShowBoard && a.Board != "" {
		fmt.Fprint(ow, a.Board)
		if !strings.HasSuffix(a.Board, "\n") {
			fmt.Fprintln(ow)
		}
		fmt.Fprintln(ow)
	}

	fmt.Fprintf(ow, "FEN: %s\n", a.FEN)
	fmt.Fprintf(ow, "To move: %s\n", a.ToMove)
	fmt.Fprintf(ow, "Status: %s\n", a.Status)
	fmt.Fprintf(ow, "Legal moves (%d):\n", len(a.Legal))

	if len(a.Legal) > 0 {
		lw := NewOutputWriter(ow, int(cfg.MaxLineLength))
		for _, m := range a.Legal {
			lw.Write(m)
		}
		lw.NewLine()
	}

	if a.Perft != nil {
		for _, line := range a.Perft.Divide {
			fmt.Fprintf(ow, "%s: %d\n", line.Move, line.Nodes)
		}
		fmt.Fprintf(ow, "Perft(%d): %d\n", a.Perft.Depth, a.Perft.Nodes)
	}

	return ow.err
}

// errWriter remembers the first write error so a run of Fprintf calls can
// be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
