package demosuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanBelleKoen/softassert/framework"
)

func TestDemoSuitePasses(t *testing.T) {
	s := framework.NewSuite()
	RegisterTests(s)

	results := s.Run(nil, nil)

	for _, f := range results.Failures {
		t.Logf("failed: %s", framework.TestFailure{ID: f.TestID, Err: f.Errors[0]})
	}
	require.True(t, results.OK())
	assert.NotEmpty(t, results.Tests)
}

func TestDemoSuiteIncludesSkippedTest(t *testing.T) {
	s := framework.NewSuite()
	RegisterTests(s)

	results := s.Run(nil, nil)

	skipped := 0
	for _, r := range results.Tests {
		if r.Skipped {
			skipped++
		}
	}
	assert.Equal(t, 1, skipped)
}
