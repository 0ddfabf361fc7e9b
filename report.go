package softassert

import (
	"fmt"
	"strings"
)

// FailureKind labels an aggregate failure so that tooling can tell it apart
// from a single native assertion failure.
const FailureKind = "AggregatedAssertionFailure"

const bannerWidth = 80

// AggregateError is the single composite failure raised at the end of an
// aggregating test when one or more soft assertions failed. Failures are in
// encounter order.
type AggregateError struct {
	Failures []Failure
}

func (e *AggregateError) Kind() string {
	return FailureKind
}

// Error renders the failure banner. The format is a contract: an empty line,
// a line of 80 "=", a "SOFT ASSERTION FAILURES (<N> failed):" header, another
// "=" line, the numbered failures indented by two spaces, a closing "=" line,
// and an empty line. Entries are numbered 1..N over the failures that
// actually occurred, not over the positions of the original checks.
func (e *AggregateError) Error() string {
	banner := strings.Repeat("=", bannerWidth)
	lines := make([]string, 0, len(e.Failures)+6)
	lines = append(lines,
		"",
		banner,
		fmt.Sprintf("SOFT ASSERTION FAILURES (%d failed):", len(e.Failures)),
		banner,
	)
	for i, f := range e.Failures {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, f.Message))
	}
	lines = append(lines, banner, "")
	return strings.Join(lines, "\n")
}
