package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Results is the accumulated outcome of a suite run.
type Results struct {
	// RunID uniquely identifies this run in exported results.
	RunID    string
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

type jsonTestResult struct {
	Name    string   `json:"name"`
	Failed  bool     `json:"failed"`
	Skipped bool     `json:"skipped,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

type jsonResults struct {
	RunID    string           `json:"runId"`
	Passed   bool             `json:"passed"`
	Failures int              `json:"failures"`
	Tests    []jsonTestResult `json:"tests"`
}

// WriteJSON writes a machine-readable summary of the results, for consumption
// by CI tooling.
func (r Results) WriteJSON(w io.Writer) error {
	out := jsonResults{
		RunID:    r.RunID,
		Passed:   r.OK(),
		Failures: len(r.Failures),
	}
	for _, t := range r.Tests {
		jt := jsonTestResult{
			Name:    t.TestID.String(),
			Failed:  len(t.Errors) > 0,
			Skipped: t.Skipped,
		}
		for _, err := range t.Errors {
			jt.Errors = append(jt.Errors, err.Error())
		}
		out.Tests = append(out.Tests, jt)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
