// Package demosuite is a runnable demonstration of soft-assertion semantics:
// a small suite of HTTP-behavior checks written against mock endpoints, where
// each test makes all of its checks before reporting. It is what the
// softassert-demo binary runs.
package demosuite

import (
	"github.com/VanBelleKoen/softassert"
	"github.com/VanBelleKoen/softassert/framework"
)

// RegisterTests adds the demonstration tests to the suite. The options are
// applied to every aggregating test's scope.
func RegisterTests(s *framework.Suite, opts ...softassert.Option) {
	registerResponseTests(s, opts)
	registerChainTests(s, opts)
	registerAsyncTests(s, opts)

	softassert.TestSkip(s, "upstream latency budget (pending)", func(t *softassert.T) softassert.Completion {
		// Requires a latency-injecting mock; see registerChainTests for the
		// shape this will take.
		return nil
	})
}
