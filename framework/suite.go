package framework

import (
	"github.com/google/uuid"
)

type testMode int

const (
	modeNormal testMode = iota
	modeOnly
	modeSkip
)

type testEntry struct {
	name string
	fn   func(*Context)
	mode testMode
}

// Suite accumulates test registrations and then runs them. Registration and
// execution are separate phases so that "only" marks can restrict the run
// before anything has executed.
type Suite struct {
	entries []testEntry
}

func NewSuite() *Suite {
	return &Suite{}
}

// Test registers a test to run when the suite runs.
func (s *Suite) Test(name string, fn func(*Context)) {
	s.add(name, fn, modeNormal)
}

// Only registers a test and restricts the run: if any test in the suite is
// registered with Only, tests registered with Test do not execute.
func (s *Suite) Only(name string, fn func(*Context)) {
	s.add(name, fn, modeOnly)
}

// Skip registers a test whose body will never execute. It still appears in
// the results, marked as skipped.
func (s *Suite) Skip(name string, fn func(*Context)) {
	s.add(name, fn, modeSkip)
}

func (s *Suite) add(name string, fn func(*Context), mode testMode) {
	s.entries = append(s.entries, testEntry{name: name, fn: fn, mode: mode})
}

func (s *Suite) hasOnly() bool {
	for _, e := range s.entries {
		if e.mode == modeOnly {
			return true
		}
	}
	return false
}

// Run executes the registered tests in registration order and returns the
// accumulated results. Tests run one at a time; no two test bodies ever
// overlap. A nil filter runs everything; a nil testLogger discards all
// progress output.
func (s *Suite) Run(filter Filter, testLogger TestLogger) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	env.results.RunID = uuid.NewString()

	restricted := s.hasOnly()
	for _, e := range s.entries {
		id := TestID{Path: []string{e.name}}
		testLogger.TestStarted(id)

		var skipReason string
		switch {
		case e.mode == modeSkip:
			skipReason = "marked as skipped"
		case restricted && e.mode != modeOnly:
			skipReason = "excluded because other tests are marked as only"
		case filter != nil && !filter(id):
			skipReason = "excluded by filter parameters"
		}
		if skipReason != "" {
			env.results.Tests = append(env.results.Tests, TestResult{TestID: id, Skipped: true})
			testLogger.TestSkipped(id, skipReason)
			continue
		}

		c := &Context{id: id, env: env}
		c.run(e.fn)
		if c.skipped {
			testLogger.TestSkipped(id, c.skipReason)
		} else {
			testLogger.TestFinished(id, c.failed, c.debugLogger.Output())
		}
	}
	return env.results
}
