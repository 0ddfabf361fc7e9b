package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a running test. It is used similarly to *testing.T: it
// implements require.TestingT so standard assertions can be used against it,
// has a Run method for subtests, can skip the rest of the test, and can
// register cleanup hooks that always run when the test ends.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); ok {
				// a FailNow or Skip unwound the test body
				if !c.skipped && len(c.errors) == 0 {
					c.addError(errors.New("test failed with no failure message"))
				}
			} else {
				c.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
			}
		}
		for i := len(c.cleanups) - 1; i >= 0; i-- {
			c.cleanups[i]()
		}
		result := TestResult{TestID: c.id, Errors: c.errors, Skipped: c.skipped}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) addError(err error) {
	c.failed = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// ID returns the full identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest, like the Run method of testing.T.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.addError(reformatError(fmt.Errorf(format, args...)))
}

// FailWith marks the test as failed with the given error, preserving the
// error value itself so that tooling can inspect its type in the results.
func (c *Context) FailWith(err error) {
	c.addError(err)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (c *Context) FailNow() {
	panic(c)
}

// Skip marks the test as skipped and immediately exits it.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation that will appear in the log.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Cleanup registers a function to run when the test ends, whether it passed,
// failed, or was aborted partway. Cleanups run in last-in, first-out order.
func (c *Context) Cleanup(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

// Debug logs some debug output for the test. The output is passed to the test
// logger at the end of the test.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger for passing to test infrastructure components.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError cleans up the multi-line messages produced by assertion
// helpers, which start with a line feed and use tab indentation.
func reformatError(err error) error {
	s := strings.TrimLeft(err.Error(), "\n")
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", "    ")
	}
	return errors.New(s)
}
