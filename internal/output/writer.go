package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/suite"
)

// AnalysisWriter is the interface for writing analyses to output.
// Different implementations handle different output formats (text, JSON).
type AnalysisWriter interface {
	// WriteAnalysis writes a single analysis to the output.
	WriteAnalysis(a Analysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) AnalysisWriter {
	if cfg.Format == config.JSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes analyses as human-readable reports.
type TextWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteAnalysis writes a report, separating consecutive reports by a blank line.
func (tw *TextWriter) WriteAnalysis(a Analysis) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	tw.written++
	return WriteText(tw.w, a, tw.cfg)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes analyses in JSON format.
// It buffers analyses and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w        io.Writer
	analyses []Analysis
	single   bool // If true, write each analysis immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches analyses and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:        w,
		analyses: make([]Analysis, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each analysis immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteAnalysis buffers an analysis for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteAnalysis(a Analysis) error {
	if jw.single {
		return WriteJSON(jw.w, a)
	}
	jw.analyses = append(jw.analyses, a)
	return nil
}

// Flush writes all buffered analyses as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.analyses) == 0 {
		return nil
	}

	err := WriteAnalysesJSON(jw.w, jw.analyses)

	// Clear buffer after writing
	jw.analyses = jw.analyses[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteSuiteText writes one line per suite result followed by a summary.
func WriteSuiteText(w io.Writer, results []suite.Result) error {
	ew := &errWriter{w: w}
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
			fmt.Fprintf(ew, "ok    %s\n", r.Name)
			continue
		}
		fmt.Fprintf(ew, "FAIL  %s\n", r.Name)
		if len(r.Failures) == 0 {
			fmt.Fprintf(ew, "      %v\n", r.Err)
		}
		for _, f := range r.Failures {
			fmt.Fprintf(ew, "      %s\n", f)
		}
	}
	fmt.Fprintf(ew, "%d/%d passed\n", passed, len(results))
	return ew.err
}
