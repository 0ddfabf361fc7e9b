package softassert

import "fmt"

// TestingT is the assertion seam: the single entry point that all assertion
// helpers funnel through. The assert style of helper raises failures via
// Errorf; the require style calls Errorf and then FailNow. It is satisfied by
// *testing.T and by framework.Context.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

// Optional capabilities of the strict delegate, detected by interface
// upgrade.
type failWither interface{ FailWith(err error) }
type cleanuper interface{ Cleanup(fn func()) }
type debugLogger interface{ Debug(message string, args ...interface{}) }

// T intercepts assertion failures. It implements TestingT around a strict
// delegate that is captured at construction and never reassigned. While its
// recorder is active, failures raised through Errorf are recorded and
// swallowed so the calling assertion chain perceives success; while inactive,
// every call is delegated verbatim, preserving regular semantics exactly.
type T struct {
	strict TestingT
	rec    *Recorder
	chain  Chain
}

// Option configures a soft scope at construction.
type Option func(*T)

// WithStackCapture attaches a stack trace to each recorded failure. Stacks
// are never part of the aggregate report text; they are written to the host's
// debug output and exposed on the AggregateError for tooling.
func WithStackCapture() Option {
	return func(t *T) { t.rec.captureStacks = true }
}

// New wraps a strict delegate in an interception scope. The scope starts
// inactive; the registration adapters and Wrap activate it around the test
// body.
func New(strict TestingT, opts ...Option) *T {
	t := &T{strict: strict, rec: &Recorder{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Errorf is called by assertion helpers to raise a failure.
func (t *T) Errorf(format string, args ...interface{}) {
	if !t.rec.Active() {
		t.strict.Errorf(format, args...)
		return
	}
	f := newFailure(fmt.Sprintf(format, args...), t.rec.captureStacks)
	t.rec.Append(f)
	t.debugf("soft assertion failure #%d: %s", t.rec.Len(), f.Message)
	if f.Stack.IsDefined() {
		t.debugf("captured at:\n%s", f.Stack.StringValue())
	}
}

// FailNow aborts the test immediately. An abort is a hard failure even while
// soft collection is active: the record appended by the immediately preceding
// Errorf (the require helpers call Errorf and then FailNow) is handed to the
// strict delegate as the test's failure, and all other buffered soft failures
// are discarded.
func (t *T) FailNow() {
	if t.rec.Active() {
		last, ok := t.rec.takeLast()
		t.rec.Discard()
		if ok {
			t.strict.Errorf("%s", last.Message)
		}
	}
	t.strict.FailNow()
}

// Defer appends a step to the test's deferred command chain. Steps run in
// order after the test body returns, before the aggregate report. A step
// returning an error is a hard failure that aborts the test.
func (t *T) Defer(desc string, step func() error) {
	t.chain.append(desc, step)
}

// Cleanup registers a function to run when the test ends regardless of
// outcome, using the host's cleanup mechanism when it has one. Unlike Defer,
// a cleanup cannot fail the test and still runs after a hard failure.
func (t *T) Cleanup(fn func()) {
	if c, ok := t.strict.(cleanuper); ok {
		c.Cleanup(fn)
		return
	}
	t.chain.append("cleanup", func() error { fn(); return nil })
}

// Report ends soft collection and, if any failures were recorded, raises them
// as one AggregateError on the strict delegate. With no recorded failures it
// does nothing. The buffer is empty afterward either way. Report is normally
// invoked for you by the registration adapters or by Wrap.
func (t *T) Report() {
	t.rec.active = false
	failures := t.rec.Drain()
	if len(failures) == 0 {
		return
	}
	err := &AggregateError{Failures: failures}
	if fw, ok := t.strict.(failWither); ok {
		fw.FailWith(err)
		return
	}
	t.strict.Errorf("%s", err.Error())
}

func (t *T) debugf(format string, args ...interface{}) {
	if d, ok := t.strict.(debugLogger); ok {
		d.Debug(format, args...)
	}
}
