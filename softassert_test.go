package softassert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStrictT is a minimal strict delegate: it records what is raised on it
// so tests can assert on the assertion layer itself.
type mockStrictT struct {
	errors   []string
	failNows int
}

func (m *mockStrictT) Errorf(format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}

func (m *mockStrictT) FailNow() {
	m.failNows++
}

// mockFailWithT additionally accepts typed failures, like framework.Context.
type mockFailWithT struct {
	mockStrictT
	failures []error
}

func (m *mockFailWithT) FailWith(err error) {
	m.failures = append(m.failures, err)
}

func newActiveScope(strict TestingT, opts ...Option) *T {
	t := New(strict, opts...)
	t.rec.Activate()
	return t
}

func TestInactiveScopeDelegatesVerbatim(t *testing.T) {
	mock := &mockStrictT{}
	st := New(mock)

	st.Errorf("bad value %d", 3)
	st.FailNow()

	assert.Equal(t, []string{"bad value 3"}, mock.errors)
	assert.Equal(t, 1, mock.failNows)
}

func TestActiveScopeRecordsAndSwallows(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Errorf("first")
	st.Errorf("second")

	assert.Empty(t, mock.errors, "failures should not reach the strict delegate")
	assert.Zero(t, mock.failNows)
	assert.Equal(t, 2, st.rec.Len())
}

func TestReportRaisesOneAggregateFailure(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Errorf("first")
	st.Errorf("second")
	st.Report()

	require.Len(t, mock.errors, 1)
	assert.Contains(t, mock.errors[0], "SOFT ASSERTION FAILURES (2 failed):")
	assert.Contains(t, mock.errors[0], "\n  1. first\n  2. second\n")
	assert.Zero(t, st.rec.Len(), "buffer must be empty after the report")
	assert.False(t, st.rec.Active())
}

func TestReportWithNoFailuresDoesNothing(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Report()

	assert.Empty(t, mock.errors)
	assert.Zero(t, mock.failNows)
	assert.Zero(t, st.rec.Len())
}

func TestReportPreservesErrorTypeWhenHostAllows(t *testing.T) {
	mock := &mockFailWithT{}
	st := newActiveScope(mock)

	st.Errorf("broken")
	st.Report()

	require.Len(t, mock.failures, 1)
	var agg *AggregateError
	require.True(t, errors.As(mock.failures[0], &agg))
	assert.Equal(t, FailureKind, agg.Kind())
	require.Len(t, agg.Failures, 1)
	assert.Equal(t, "broken", agg.Failures[0].Message)
	assert.Empty(t, mock.errors, "typed path should bypass Errorf")
}

// Pins the numbering scheme: entries are renumbered 1..N over the checks that
// actually failed, not indexed by original check position.
func TestReportRenumbersAmongFailures(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Errorf("A")
	// second check passes: nothing is raised
	st.Errorf("C")
	st.Report()

	require.Len(t, mock.errors, 1)
	assert.Contains(t, mock.errors[0], "\n  1. A\n  2. C\n")
	assert.NotContains(t, mock.errors[0], "3.")
	assert.Contains(t, mock.errors[0], "(2 failed):")
}

func TestFailNowDuringSoftScopeIsHardFailure(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Errorf("soft, to be discarded")
	// the require helpers raise via Errorf and then call FailNow
	st.Errorf("fatal mismatch")
	st.FailNow()

	assert.Equal(t, []string{"fatal mismatch"}, mock.errors,
		"only the aborting failure should reach the strict delegate")
	assert.Equal(t, 1, mock.failNows)
	assert.Zero(t, st.rec.Len())
	assert.False(t, st.rec.Active())
}

func TestFailNowWithEmptyBufferStillAborts(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.FailNow()

	assert.Empty(t, mock.errors)
	assert.Equal(t, 1, mock.failNows)
	assert.False(t, st.rec.Active())
}

func TestScopeDoesNotLeakAfterReport(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock)

	st.Errorf("collected")
	st.Report()
	st.Errorf("after the test")

	require.Len(t, mock.errors, 2)
	assert.Equal(t, "after the test", mock.errors[1],
		"post-report failures must delegate immediately")
}

func TestStackCaptureOption(t *testing.T) {
	mock := &mockStrictT{}
	st := newActiveScope(mock, WithStackCapture())

	st.Errorf("with stack")

	failures := st.rec.Drain()
	require.Len(t, failures, 1)
	require.True(t, failures[0].Stack.IsDefined())
	assert.Contains(t, failures[0].Stack.StringValue(), "softassert_test.go")
}

func TestCleanupFallsBackToChainWithoutHostSupport(t *testing.T) {
	mock := &mockStrictT{}
	st := New(mock)

	ran := false
	st.Cleanup(func() { ran = true })
	require.NoError(t, st.chain.drain())

	assert.True(t, ran)
}
