// Package softassert converts stop-on-first-failure assertion semantics into
// run-everything, report-once semantics for a single test.
//
// The assertion engine is the assert/require style of API, whose single entry
// point is the TestingT interface: every assertion helper raises failures by
// calling Errorf, and the require variants then call FailNow. softassert.T
// implements that interface around a strict delegate (a framework.Context, a
// *testing.T, or anything else with Errorf and FailNow). While a soft scope is
// active, failures raised through T are recorded in order and swallowed, so
// the test keeps running; when the test's work is finished, all recorded
// failures are raised as one AggregateError with a numbered list.
//
// Failures that do not go through the assertion seam - panics in the test
// body, errors from deferred command steps, rejected asynchronous completions,
// and FailNow aborts - are hard failures: they end the test immediately,
// without an aggregate report, and any soft failures recorded up to that point
// are discarded.
//
// Tests are registered through Test, TestOnly, and TestSkip against a
// framework.Suite, or a soft scope can be opened over a plain Go test with
// Wrap.
package softassert
