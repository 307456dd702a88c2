package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore/internal/suite"
)

// JSONOutput holds multiple analyses for array output.
type JSONOutput struct {
	Positions []Analysis `json:"positions"`
}

// JSONSuiteResult represents one suite entry outcome in JSON format.
type JSONSuiteResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	FEN      string   `json:"fen,omitempty"`
	Failures []string `json:"failures,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// JSONSuiteReport summarises a suite run.
type JSONSuiteReport struct {
	Total   int               `json:"total"`
	Passed  int               `json:"passed"`
	Failed  int               `json:"failed"`
	Results []JSONSuiteResult `json:"results"`
}

// WriteJSON writes a single analysis as an indented JSON document.
func WriteJSON(w io.Writer, a Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// WriteAnalysesJSON writes several analyses as a JSON array.
func WriteAnalysesJSON(w io.Writer, analyses []Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Positions: analyses})
}

// SuiteResultToJSON converts a suite result to JSON format.
func SuiteResultToJSON(r suite.Result) JSONSuiteResult {
	jr := JSONSuiteResult{
		Name:     r.Name,
		Passed:   r.Passed(),
		FEN:      r.FEN,
		Failures: r.Failures,
	}
	if r.Err != nil && len(r.Failures) == 0 {
		jr.Error = r.Err.Error()
	}
	return jr
}

// WriteSuiteJSON writes a suite report in JSON format.
func WriteSuiteJSON(w io.Writer, results []suite.Result) error {
	report := JSONSuiteReport{
		Total:   len(results),
		Results: make([]JSONSuiteResult, 0, len(results)),
	}
	for _, r := range results {
		jr := SuiteResultToJSON(r)
		if jr.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&report)
}
