// Package framework contains the test-registration host that the soft-assertion
// layer plugs into.
//
// The general model is:
//
// 1. A Suite collects test registrations. Tests can be registered normally, as
// "only" (when any such test exists, the run is restricted to those tests), or
// as "skip" (the body is never executed).
//
// 2. Running the suite executes each selected test with a Context, which is
// similar to Go's *testing.T: it accumulates failures, supports immediate
// failure exit and skipping, can register per-test cleanup hooks, and captures
// debug output that is only shown when wanted.
//
// 3. Context implements the TestingT interface used by the assert and require
// packages, so standard assertions can be used against it directly.
//
// The framework knows nothing about soft assertions; the softassert package
// layers collect-and-report-once semantics on top of it.
package framework
