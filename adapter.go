package softassert

import (
	"github.com/VanBelleKoen/softassert/framework"
)

// Body is a test body run under soft-assertion semantics. Its return value
// says how the body finishes: nil means the work is already done when the
// function returns (steps queued with Defer still run afterward), and Await
// means the test is only done once the given channel delivers.
type Body func(*T) Completion

// Completion is the explicit variant describing how a test body completes.
// Values are produced by Await; a nil Completion means immediate completion.
type Completion interface {
	settle() error
}

type awaitCompletion struct {
	ch <-chan error
}

func (a awaitCompletion) settle() error { return <-a.ch }

// Await makes a Completion that settles when the channel delivers. A nil
// value means the asynchronous work succeeded; a non-nil error is a hard
// failure that aborts the test without an aggregate report.
func Await(ch <-chan error) Completion {
	return awaitCompletion{ch: ch}
}

// Test registers an aggregating test on the suite: it behaves like a plain
// suite test except that assertion failures raised through the provided T are
// collected and reported once at the end of the test.
func Test(s *framework.Suite, name string, body Body, opts ...Option) {
	s.Test(name, runAggregating(body, opts))
}

// TestOnly is Test with the suite's run-restriction mark: when any test is
// registered this way, tests registered without the mark do not execute.
func TestOnly(s *framework.Suite, name string, body Body, opts ...Option) {
	s.Only(name, runAggregating(body, opts))
}

// TestSkip registers a skipped test. The body never executes and no soft
// collection takes place.
func TestSkip(s *framework.Suite, name string, body Body, opts ...Option) {
	s.Skip(name, runAggregating(body, opts))
}

func runAggregating(body Body, opts []Option) func(*framework.Context) {
	return func(c *framework.Context) {
		t := New(c, opts...)
		t.rec.Activate()
		// Safety net: even if the test is aborted in a way that bypasses the
		// paths below, no soft state survives into the next test.
		c.Cleanup(t.rec.Discard)

		defer func() {
			if r := recover(); r != nil {
				// Hard failure inside the body. Buffered soft failures are
				// deliberately dropped; the panic reports on its own.
				t.rec.Discard()
				panic(r)
			}
		}()

		completion := body(t)
		if completion != nil {
			if err := completion.settle(); err != nil {
				t.rec.Discard()
				c.FailWith(err)
				c.FailNow()
			}
		}

		// The report is the last chain step, so every assertion queued by the
		// body runs, and is captured, before it.
		t.Defer("aggregate report", func() error {
			t.Report()
			return nil
		})
		if err := t.chain.drain(); err != nil {
			t.rec.Discard()
			c.FailWith(err)
			c.FailNow()
		}
	}
}
