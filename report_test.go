package softassert

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The banner layout is a contract; this fixture is byte-exact.
func TestAggregateErrorFormat(t *testing.T) {
	err := &AggregateError{Failures: []Failure{
		{Message: "expected title to contain 'Welcome'"},
		{Message: "expected button to be visible"},
	}}

	banner := strings.Repeat("=", 80)
	want := strings.Join([]string{
		"",
		banner,
		"SOFT ASSERTION FAILURES (2 failed):",
		banner,
		"  1. expected title to contain 'Welcome'",
		"  2. expected button to be visible",
		banner,
		"",
	}, "\n")

	assert.Equal(t, want, err.Error())
}

func TestAggregateErrorFormatSingleFailure(t *testing.T) {
	err := &AggregateError{Failures: []Failure{{Message: "nope"}}}

	assert.Contains(t, err.Error(), "SOFT ASSERTION FAILURES (1 failed):")
	assert.Contains(t, err.Error(), "\n  1. nope\n")
}

func TestAggregateErrorKind(t *testing.T) {
	err := &AggregateError{Failures: []Failure{{Message: "x"}}}
	assert.Equal(t, "AggregatedAssertionFailure", err.Kind())

	wrapped := fmt.Errorf("test failed: %w", err)
	var agg *AggregateError
	require.True(t, errors.As(wrapped, &agg))
	assert.Len(t, agg.Failures, 1)
}
