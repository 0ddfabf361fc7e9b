package softassert

import (
	"runtime/debug"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Failure is one captured soft assertion failure. It is immutable once
// created. The stack is only present when stack capture is enabled for the
// scope.
type Failure struct {
	Message string
	Stack   ldvalue.OptionalString
}

// Recorder is the ordered buffer of soft failures for one test, together with
// the flag that says whether soft collection is currently active. A recorder
// belongs to a single test scope; tests run one at a time, so no locking is
// involved.
type Recorder struct {
	active        bool
	captureStacks bool
	failures      []Failure
}

// Activate clears the buffer and turns soft collection on. It is safe to call
// on an already-active recorder.
func (r *Recorder) Activate() {
	r.failures = nil
	r.active = true
}

// Active reports whether failures are currently being collected.
func (r *Recorder) Active() bool {
	return r.active
}

// Discard turns soft collection off and throws away any buffered failures.
// This is the hard-failure path and the per-test safety net; it is safe to
// call any number of times.
func (r *Recorder) Discard() {
	r.active = false
	r.failures = nil
}

// Append adds a failure to the end of the buffer. Encounter order is
// preserved exactly; it is the order the aggregate report will use.
func (r *Recorder) Append(f Failure) {
	r.failures = append(r.failures, f)
}

// Len returns the number of buffered failures.
func (r *Recorder) Len() int {
	return len(r.failures)
}

// Drain returns the buffered failures in encounter order and clears the
// buffer. The clear happens before the caller formats anything, so the next
// activation always starts clean.
func (r *Recorder) Drain() []Failure {
	captured := r.failures
	r.failures = nil
	return captured
}

func (r *Recorder) takeLast() (Failure, bool) {
	if len(r.failures) == 0 {
		return Failure{}, false
	}
	last := r.failures[len(r.failures)-1]
	r.failures = r.failures[:len(r.failures)-1]
	return last, true
}

func newFailure(message string, withStack bool) Failure {
	f := Failure{Message: message}
	if withStack {
		f.Stack = ldvalue.NewOptionalString(captureStack())
	}
	return f
}

// captureStack returns the current stack with the frames belonging to this
// package trimmed off, so the first frame is the assertion call site.
func captureStack() string {
	lines := strings.Split(string(debug.Stack()), "\n")
	for i := 1; i+1 < len(lines); i += 2 {
		if strings.Contains(lines[i], "runtime/debug.") ||
			strings.Contains(lines[i], "softassert.captureStack") ||
			strings.Contains(lines[i], "softassert.newFailure") ||
			strings.Contains(lines[i], "softassert.(*T).Errorf") {
			continue
		}
		return strings.Join(lines[i:], "\n")
	}
	return strings.Join(lines, "\n")
}
